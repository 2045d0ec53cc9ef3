package notifier

import (
	"context"
	"fmt"

	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackInbox delivers inbox notifications as direct messages from the bot
type SlackInbox struct {
	client contract.SlackClient
}

func NewSlackInbox(client contract.SlackClient) *SlackInbox {
	return &SlackInbox{client: client}
}

func (i *SlackInbox) Notify(ctx context.Context, recipient *entity.User, body string) error {
	if recipient.SlackUserID == "" {
		return fmt.Errorf("user %d has no Slack account", recipient.ID)
	}

	// Posting to a user ID lands in the bot's DM with that user
	_, _, err := i.client.PostMessageContext(ctx,
		recipient.SlackUserID,
		slack.MsgOptionText(body, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message to %s: %w", recipient.SlackUserID, err)
	}

	return nil
}
