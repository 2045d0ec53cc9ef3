package domain

import "errors"

var (
	// ErrInvalidInput covers out-of-range or unordered shift times and bad timezones
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingRecipients means nobody could be addressed
	ErrMissingRecipients = errors.New("missing recipients")
	// ErrTemplateFormat means the message template has malformed substitution syntax
	ErrTemplateFormat = errors.New("malformed message template")
	// ErrDelivery wraps transport failures during the fan-out
	ErrDelivery = errors.New("delivery failed")
)
