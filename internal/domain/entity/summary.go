package entity

import "fmt"

// Summary is the confirmation shown to the requester after a dispatch
func (r *DispatchResult) Summary() string {
	msg := fmt.Sprintf("Notification sent to %d recipients via inbox.", r.Notified)
	if r.EmailAttempted {
		msg += " Email was also sent to those with an address."
	}
	if len(r.Failures) > 0 {
		msg += fmt.Sprintf(" %d deliveries failed.", len(r.Failures))
	}
	return msg
}
