package contract

import (
	"context"

	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
)

// Inbox delivers an in-app message to a single recipient
type Inbox interface {
	Notify(ctx context.Context, recipient *entity.User, body string) error
}

// Mailer sends one HTML email
type Mailer interface {
	SendEmail(ctx context.Context, address, subject, htmlBody string) error
}

// EmailLayout wraps a plain message body into the HTML sent by email
type EmailLayout interface {
	Render(body string) (string, error)
}
