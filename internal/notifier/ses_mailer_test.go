package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_SendEmail(t *testing.T) {
	t.Run("Should build a simple UTF-8 message", func(t *testing.T) {
		client := &fakeSES{}
		mailer := newSESMailer(client, "shifts@example.com")

		err := mailer.SendEmail(context.Background(), "olena@example.com", "Schedule for tomorrow", "<p>Шифт 09:00-18:00</p>")
		require.NoError(t, err)
		require.Len(t, client.inputs, 1)

		input := client.inputs[0]
		assert.Equal(t, "shifts@example.com", aws.ToString(input.FromEmailAddress))
		assert.Equal(t, []string{"olena@example.com"}, input.Destination.ToAddresses)
		assert.Equal(t, "Schedule for tomorrow", aws.ToString(input.Content.Simple.Subject.Data))
		assert.Equal(t, "<p>Шифт 09:00-18:00</p>", aws.ToString(input.Content.Simple.Body.Html.Data))
		assert.Equal(t, "UTF-8", aws.ToString(input.Content.Simple.Body.Html.Charset))
	})

	t.Run("Should wrap client errors", func(t *testing.T) {
		sesErr := errors.New("MessageRejected")
		mailer := newSESMailer(&fakeSES{err: sesErr}, "shifts@example.com")

		err := mailer.SendEmail(context.Background(), "olena@example.com", "s", "b")
		require.ErrorIs(t, err, sesErr)
		assert.Contains(t, err.Error(), "sending email via SES")
	})
}
