package entity

import (
	"time"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
)

// ShiftRequest is the transient state of one "you're on shift tomorrow" action.
// It is created per command, mutated by the field-change handlers and discarded
// after dispatch.
type ShiftRequest struct {
	DepartmentID int64
	Employees    []*Employee
	Window       domain.ShiftWindow
	Message      string
	SendEmail    bool

	// RequesterTZ is the requester's IANA timezone, empty when unknown
	RequesterTZ string
}

// NewShiftRequest returns a request with the default window and message
func NewShiftRequest() *ShiftRequest {
	return &ShiftRequest{
		Window: domain.ShiftWindow{
			Start: domain.DefaultShiftStart,
			End:   domain.DefaultShiftEnd,
		},
		Message: domain.DefaultMessage,
	}
}

// ShiftPreview is what a dispatch would send, without sending it
type ShiftPreview struct {
	Body       string
	Bounds     domain.Bounds
	Recipients []*User
}

// DeliveryFailure records one recipient that could not be reached
type DeliveryFailure struct {
	UserID  int64
	Channel string
	Err     error
}

type DispatchResult struct {
	ID             string
	Bounds         domain.Bounds
	Notified       int
	EmailAttempted bool
	Emailed        int
	Failures       []DeliveryFailure
	SentAt         time.Time
}
