package queue

import (
	"time"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
)

type Event string

const (
	EventCall   Event = "call"
	EventStart  Event = "start"
	EventFinish Event = "finish"
	EventNoShow Event = "no_show"
	EventLeave  Event = "leave"
)

var transitions = map[models.EntryStatus]map[Event]models.EntryStatus{
	models.StatusWaiting: {
		EventCall:  models.StatusCalled,
		EventLeave: models.StatusLeft,
	},
	models.StatusCalled: {
		EventStart:  models.StatusInService,
		EventNoShow: models.StatusNoShow,
		EventLeave:  models.StatusLeft,
	},
	models.StatusInService: {
		EventFinish: models.StatusDone,
	},
}

// Next returns the status reached from 'from' on ev, or ErrInvalidState.
func Next(from models.EntryStatus, ev Event) (models.EntryStatus, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return "", qerrors.ErrInvalidState
	}
	return to, nil
}

// Apply moves e through ev at time 'at'. barberID is the acting barber; it must match the
// serving barber for start, finish and no-show. Leave ignores it.
func Apply(e *models.QueueEntry, ev Event, barberID string, at time.Time) error {
	to, err := Next(e.Status, ev)
	if err != nil {
		return err
	}

	switch ev {
	case EventCall:
		if barberID == "" {
			return qerrors.ErrInvalidInput
		}
		if !IsEligible(barberID, e) {
			return qerrors.ErrForbidden
		}
		e.ServingBarberID = &barberID
		e.CalledAt = &at
	case EventStart:
		if !e.HeldBy(barberID) {
			return qerrors.ErrForbidden
		}
		e.StartedAt = &at
	case EventFinish, EventNoShow:
		if !e.HeldBy(barberID) {
			return qerrors.ErrForbidden
		}
		e.FinishedAt = &at
	case EventLeave:
		e.FinishedAt = &at
	}

	e.Status = to
	if !to.IsActive() || to == models.StatusInService {
		e.Position = 0
	}
	e.UpdatedAt = at

	return nil
}
