package audit

import (
	"github.com/sirupsen/logrus"

	"github.com/queuely/queuely-api/internal/logger"
)

const (
	ActionBookingCreated       = "booking_created"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionReviewCreated        = "review_created"
	ActionProfileImageUploaded = "profile_image_uploaded"
)

type Event struct {
	BusinessID uint
	ActorKind  string
	ActorID    *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Sink receives workflow events without blocking the request path.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BusinessID,
			ev.ActorKind,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.WithFields(logrus.Fields{
				"action": ev.Action,
				"entity": ev.Entity,
			}).WithError(err).Warn("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue never blocks the API; the event is dropped
		logger.WithFields(logrus.Fields{
			"action": ev.Action,
		}).Warn("audit queue full, dropping event")
	}
}

var _ Sink = (*Dispatcher)(nil)
