package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type shiftService struct {
	dm         contract.DataManager
	inbox      contract.Inbox
	mailer     contract.Mailer
	layout     contract.EmailLayout
	log        *zap.Logger
	fallbackTZ string
	policy     domain.DeliveryPolicy
	now        func() time.Time
	newID      func() string
}

// OnDepartmentChange records the selected department and, only while no employee is
// selected yet, selects every department member that has a linked user.
func (s *shiftService) OnDepartmentChange(ctx context.Context, req *entity.ShiftRequest, departmentID int64) error {
	req.DepartmentID = departmentID

	if departmentID == 0 || len(req.Employees) > 0 {
		return nil
	}

	employees, err := s.dm.Employee().Find(ctx, entity.EmployeeFilter{
		DepartmentID: departmentID,
		LinkedOnly:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to load department employees: %w", err)
	}

	req.Employees = employees
	return nil
}

// Preview runs every check of Dispatch and returns what would be sent
func (s *shiftService) Preview(ctx context.Context, req *entity.ShiftRequest) (*entity.ShiftPreview, error) {
	if len(req.Employees) == 0 {
		return nil, fmt.Errorf("%w: select at least one employee or a department", domain.ErrMissingRecipients)
	}

	loc, err := domain.LoadTimezone(req.RequesterTZ, s.fallbackTZ)
	if err != nil {
		return nil, err
	}

	bounds, err := req.Window.ResolveTomorrowBounds(loc, s.now().UTC())
	if err != nil {
		return nil, err
	}

	body, err := domain.RenderShiftMessage(req.Message, req.Window)
	if err != nil {
		return nil, err
	}

	recipients := resolveRecipients(req.Employees)
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: none of the selected employees has a linked user account", domain.ErrMissingRecipients)
	}

	return &entity.ShiftPreview{
		Body:       body,
		Bounds:     bounds,
		Recipients: recipients,
	}, nil
}

// Dispatch sends the rendered message to every recipient's inbox and, when asked,
// by email. All checks run before the first message is sent.
func (s *shiftService) Dispatch(ctx context.Context, req *entity.ShiftRequest) (result *entity.DispatchResult, err error) {
	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		dispatchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	}()

	preview, err := s.Preview(ctx, req)
	if err != nil {
		return nil, err
	}

	var htmlBody string
	if req.SendEmail {
		if s.mailer == nil || s.layout == nil {
			return nil, fmt.Errorf("%w: email delivery is not configured", domain.ErrInvalidInput)
		}
		htmlBody, err = s.layout.Render(preview.Body)
		if err != nil {
			return nil, err
		}
	}

	result = &entity.DispatchResult{
		ID:     s.newID(),
		Bounds: preview.Bounds,
		SentAt: s.now(),
	}
	log := s.log.With(zap.String("dispatch_id", result.ID))

	for _, user := range preview.Recipients {
		if err := s.inbox.Notify(ctx, user, preview.Body); err != nil {
			notificationsTotal.WithLabelValues(channelInbox, "failed").Inc()
			if s.policy == domain.DeliveryAbort {
				log.Error("inbox notification failed, aborting",
					zap.Int64("user_id", user.ID),
					zap.Int("notified", result.Notified),
					zap.Error(err),
				)
				return nil, fmt.Errorf("%w: stopped after %d of %d recipients: %w",
					domain.ErrDelivery, result.Notified, len(preview.Recipients), err)
			}
			log.Warn("inbox notification failed", zap.Int64("user_id", user.ID), zap.Error(err))
			result.Failures = append(result.Failures, entity.DeliveryFailure{UserID: user.ID, Channel: channelInbox, Err: err})
			continue
		}
		notificationsTotal.WithLabelValues(channelInbox, "sent").Inc()
		result.Notified++
	}

	if result.Notified == 0 {
		return nil, fmt.Errorf("%w: no inbox notification could be delivered", domain.ErrDelivery)
	}

	if req.SendEmail {
		result.EmailAttempted = true

		for _, user := range preview.Recipients {
			if user.Email == "" {
				continue
			}
			if err := s.mailer.SendEmail(ctx, user.Email, domain.EmailSubject, htmlBody); err != nil {
				notificationsTotal.WithLabelValues(channelEmail, "failed").Inc()
				if s.policy == domain.DeliveryAbort {
					log.Error("email failed, aborting", zap.Int64("user_id", user.ID), zap.Error(err))
					return nil, fmt.Errorf("%w: email stopped after %d messages: %w", domain.ErrDelivery, result.Emailed, err)
				}
				log.Warn("email failed", zap.Int64("user_id", user.ID), zap.Error(err))
				result.Failures = append(result.Failures, entity.DeliveryFailure{UserID: user.ID, Channel: channelEmail, Err: err})
				continue
			}
			notificationsTotal.WithLabelValues(channelEmail, "sent").Inc()
			result.Emailed++
		}
	}

	log.Info("shift notification dispatched",
		zap.Int("notified", result.Notified),
		zap.Bool("email", result.EmailAttempted),
		zap.Int("emailed", result.Emailed),
		zap.Int("failures", len(result.Failures)),
		zap.Time("shift_start", preview.Bounds.Start),
		zap.Time("shift_end", preview.Bounds.End),
	)

	return result, nil
}

// resolveRecipients returns the distinct linked users of employees, in selection order
func resolveRecipients(employees []*entity.Employee) []*entity.User {
	seen := make(map[int64]bool, len(employees))
	recipients := make([]*entity.User, 0, len(employees))

	for _, employee := range employees {
		if employee == nil || !employee.HasUser() {
			continue
		}
		if seen[employee.User.ID] {
			continue
		}
		seen[employee.User.ID] = true
		recipients = append(recipients, employee.User)
	}

	return recipients
}
