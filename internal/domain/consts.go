package domain

import "fmt"

// Default shift window, in fractional hours of the day
const (
	DefaultShiftStart = 9.0
	DefaultShiftEnd   = 18.0
)

// DefaultMessage is offered when the requester does not type a message
const DefaultMessage = "Colleagues, tomorrow you are on shift from {start} to {end}. If you have any questions, message me."

// FallbackMessage is used when the message template is empty
const FallbackMessage = "You are on shift tomorrow {start}-{end}."

// DefaultTimezone applies when neither the requester nor the configuration provides one
const DefaultTimezone = "Europe/Kyiv"

// EmailSubject is the subject of the optional email copy
const EmailSubject = "Schedule for tomorrow"

// Template slot names
const (
	SlotStart = "start"
	SlotEnd   = "end"
)

// DeliveryPolicy decides what happens when one recipient cannot be notified
type DeliveryPolicy string

const (
	// DeliveryAbort stops the fan-out on the first transport error
	DeliveryAbort DeliveryPolicy = "abort"
	// DeliveryContinue attempts every recipient and reports failures in the result
	DeliveryContinue DeliveryPolicy = "continue"
)

// ParseDeliveryPolicy maps a config value to a policy, defaulting to DeliveryAbort
func ParseDeliveryPolicy(value string) (DeliveryPolicy, error) {
	switch DeliveryPolicy(value) {
	case "", DeliveryAbort:
		return DeliveryAbort, nil
	case DeliveryContinue:
		return DeliveryContinue, nil
	default:
		return "", fmt.Errorf("%w: unknown delivery policy %q, use 'abort' or 'continue'", ErrInvalidInput, value)
	}
}
