package service

import (
	"time"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of the services. Mailer and EmailLayout may
// be nil when email delivery is not configured.
type Dependencies struct {
	DataManager contract.DataManager
	SlackClient contract.SlackClient
	Inbox       contract.Inbox
	Mailer      contract.Mailer
	EmailLayout contract.EmailLayout
	Logger      *zap.Logger
}

type Options struct {
	FallbackTimezone string
	DeliveryPolicy   domain.DeliveryPolicy
}

type Instance struct {
	Shift     *shiftService
	Directory *directoryService
}

func NewInstance(deps Dependencies, opts Options) *Instance {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	shift := &shiftService{
		dm:         deps.DataManager,
		inbox:      deps.Inbox,
		mailer:     deps.Mailer,
		layout:     deps.EmailLayout,
		log:        log.Named("shift"),
		fallbackTZ: opts.FallbackTimezone,
		policy:     opts.DeliveryPolicy,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	if shift.policy == "" {
		shift.policy = domain.DeliveryAbort
	}

	return &Instance{
		Shift:     shift,
		Directory: newDirectory(deps.DataManager, deps.SlackClient, log.Named("directory")),
	}
}
