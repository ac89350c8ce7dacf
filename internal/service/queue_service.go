package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka/producer"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/monitoring"
	"github.com/vogiaan1904/barberqueue/internal/queue"
	"github.com/vogiaan1904/barberqueue/internal/repository"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
)

// QueueService is the walk-in queue engine. Every mutation runs under the barbershop's
// coordinator lock; reads are served from the last published snapshot.
type QueueService interface {
	EnterQueue(ctx context.Context, in EnterQueueInput) (*EnterQueueOutput, error)
	GetStatusByToken(ctx context.Context, token string) (*QueueStatusOutput, error)
	LeaveQueue(ctx context.Context, token string) error
	CallNext(ctx context.Context, shopID, barberID string) (*models.QueueEntry, error)
	StartService(ctx context.Context, entryID, barberID string) (*models.QueueEntry, error)
	FinishService(ctx context.Context, entryID, barberID, notes string) (*models.QueueEntry, error)
	NoShow(ctx context.Context, entryID, barberID string) (*models.QueueEntry, error)
	RemoveEntry(ctx context.Context, entryID string, role models.ActorRole) (*models.QueueEntry, error)
	SetBarberActive(ctx context.Context, in SetBarberActiveInput) error
	// ListActiveQueue lists the barbershop's active entries, optionally only those in status.
	ListActiveQueue(ctx context.Context, shopID, viewerBarberID string, status models.EntryStatus) (*ActiveQueueOutput, error)
	GetStats(ctx context.Context, shopID string, from, to time.Time) (*StatsOutput, error)
	GetBarberCurrent(ctx context.Context, shopID, barberID string) (*models.QueueEntry, error)
	ConfigureShop(ctx context.Context, in ConfigureShopInput) error
	RefreshQueue(ctx context.Context, shopID string) (*queue.QueueInfo, error)
	ListBarbershops(ctx context.Context) ([]string, error)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)

type queueService struct {
	entries  repository.EntryRepository
	barbers  repository.BarberDirectory
	shops    repository.ShopConfigProvider
	tokens   TokenService
	coord    *Coordinator
	prod     producer.Producer
	clock    util.Clock
	validate *validator.Validate
	l        logger.Logger

	// barbershop id -> *queue.Snapshot
	snaps sync.Map
}

func NewQueueService(
	entries repository.EntryRepository,
	barbers repository.BarberDirectory,
	shops repository.ShopConfigProvider,
	tokens TokenService,
	coord *Coordinator,
	prod producer.Producer,
	clock util.Clock,
	l logger.Logger,
) QueueService {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &queueService{
		entries:  entries,
		barbers:  barbers,
		shops:    shops,
		tokens:   tokens,
		coord:    coord,
		prod:     prod,
		clock:    clock,
		validate: v,
		l:        l,
	}
}

func (s *queueService) EnterQueue(ctx context.Context, in EnterQueueInput) (out *EnterQueueOutput, err error) {
	defer func() { s.observe(ctx, "enter_queue", in.BarbershopID, err) }()

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	if in.RequestedBarberID != nil && strings.TrimSpace(*in.RequestedBarberID) == "" {
		in.RequestedBarberID = nil
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}

	err = s.withShop(ctx, in.BarbershopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		cfg, err := s.shops.Get(ctx, in.BarbershopID)
		if err != nil {
			return nil, err
		}

		if in.RequestedBarberID != nil {
			ok, err := s.barbers.IsActive(ctx, *in.RequestedBarberID, in.BarbershopID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, qerrors.ErrBarberUnavailable
			}
		}

		active, err := s.entries.ListActive(ctx, in.BarbershopID)
		if err != nil {
			return nil, err
		}
		if len(active) >= cfg.MaxQueueLength {
			return nil, qerrors.ErrQueueFull
		}

		now := s.clock.Now()
		id := uuid.NewString()

		token, rec, err := s.tokens.Issue(ctx, id)
		if err != nil {
			return nil, err
		}

		e := &models.QueueEntry{
			ID:                id,
			BarbershopID:      in.BarbershopID,
			ClientName:        in.ClientName,
			ClientPhone:       in.ClientPhone,
			RequestedBarberID: in.RequestedBarberID,
			Status:            models.StatusWaiting,
			ArrivalTime:       now,
			TokenHash:         rec.TokenHash,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := s.entries.Append(ctx, e); err != nil {
			_ = s.tokens.Revoke(ctx, rec.TokenHash)
			return nil, err
		}

		snap, err := s.commit(ctx, cfg)
		if err != nil {
			return nil, err
		}

		pos := 0
		if se, ok := snap.Entry(id); ok {
			pos = se.Position
		}

		out = &EnterQueueOutput{
			EntryID:          id,
			Token:            token,
			Position:         pos,
			EstimatedMinutes: snap.Estimate(id),
			QueueLength:      snap.Len(),
			ArrivalTime:      now,
			TokenExpiresAt:   rec.ExpiresAt,
		}

		return []models.QueueEvent{{
			Type:         models.EventEntered,
			BarbershopID: in.BarbershopID,
			EntryID:      id,
			Status:       models.StatusWaiting,
			Position:     pos,
			QueueLength:  snap.Len(),
			OccurredAt:   now,
		}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.l.Info(ctx, "Client entered queue",
		"barbershop_id", in.BarbershopID,
		"entry_id", out.EntryID,
		"position", out.Position,
	)

	return out, nil
}

func (s *queueService) GetStatusByToken(ctx context.Context, token string) (out *QueueStatusOutput, err error) {
	defer func() { s.observe(ctx, "get_status", "", err) }()

	entryID, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	e, err := s.entries.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// Token revocation is best effort; a terminal entry never reports a position.
	if e.IsTerminal() {
		return nil, qerrors.ErrTokenNotFound
	}

	snap, err := s.snapshot(ctx, e.BarbershopID)
	if err != nil {
		return nil, err
	}

	se, ok := snap.Entry(entryID)
	if !ok {
		return nil, qerrors.ErrTokenNotFound
	}

	return &QueueStatusOutput{
		EntryID:          se.ID,
		BarbershopID:     se.BarbershopID,
		Status:           se.Status,
		Position:         se.Position,
		EstimatedMinutes: snap.Estimate(se.ID),
		QueueLength:      snap.Len(),
		ServingBarberID:  se.ServingBarberID,
		ArrivalTime:      se.ArrivalTime,
	}, nil
}

func (s *queueService) LeaveQueue(ctx context.Context, token string) (err error) {
	defer func() { s.observe(ctx, "leave_queue", "", err) }()

	entryID, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return err
	}

	_, err = s.transition(ctx, entryID, queue.EventLeave, "", func(e *models.QueueEntry) {
		e.RemovedBy = string(models.RoleClient)
	})
	return err
}

func (s *queueService) CallNext(ctx context.Context, shopID, barberID string) (entry *models.QueueEntry, err error) {
	defer func() { s.observe(ctx, "call_next", shopID, err) }()

	if shopID == "" || barberID == "" {
		return nil, qerrors.ErrInvalidInput
	}

	// Holds are only created here under the barber lock, so the check below stays valid
	// until the call commits.
	unlockBarber, err := s.coord.LockBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	defer unlockBarber()

	held, err := s.holds(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, qerrors.ErrConflict
	}

	err = s.withShop(ctx, shopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		cfg, err := s.shops.Get(ctx, shopID)
		if err != nil {
			return nil, err
		}

		ok, err := s.barbers.IsActive(ctx, barberID, shopID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, qerrors.ErrForbidden
		}

		active, err := s.entries.ListActive(ctx, shopID)
		if err != nil {
			return nil, err
		}

		next := queue.NextFor(barberID, active)
		if next == nil {
			return nil, qerrors.ErrEmptyQueue
		}

		now := s.clock.Now()
		if _, err := s.entries.Update(ctx, next.ID, func(e *models.QueueEntry) error {
			return queue.Apply(e, queue.EventCall, barberID, now)
		}); err != nil {
			return nil, err
		}

		snap, err := s.commit(ctx, cfg)
		if err != nil {
			return nil, err
		}

		called, ok := snap.Entry(next.ID)
		if !ok {
			return nil, qerrors.ErrEntryNotFound
		}
		entry = called

		return []models.QueueEvent{{
			Type:         models.EventCalled,
			BarbershopID: shopID,
			EntryID:      called.ID,
			BarberID:     barberID,
			Status:       called.Status,
			Position:     called.Position,
			QueueLength:  snap.Len(),
			OccurredAt:   now,
		}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.l.Info(ctx, "Client called",
		"barbershop_id", shopID,
		"barber_id", barberID,
		"entry_id", entry.ID,
	)

	return entry, nil
}

func (s *queueService) StartService(ctx context.Context, entryID, barberID string) (entry *models.QueueEntry, err error) {
	defer func() { s.observe(ctx, "start_service", "", err) }()
	return s.transition(ctx, entryID, queue.EventStart, barberID, nil)
}

func (s *queueService) FinishService(ctx context.Context, entryID, barberID, notes string) (entry *models.QueueEntry, err error) {
	defer func() { s.observe(ctx, "finish_service", "", err) }()
	return s.transition(ctx, entryID, queue.EventFinish, barberID, func(e *models.QueueEntry) {
		if notes != "" {
			e.Notes = notes
		}
	})
}

func (s *queueService) NoShow(ctx context.Context, entryID, barberID string) (entry *models.QueueEntry, err error) {
	defer func() { s.observe(ctx, "no_show", "", err) }()
	return s.transition(ctx, entryID, queue.EventNoShow, barberID, nil)
}

func (s *queueService) RemoveEntry(ctx context.Context, entryID string, role models.ActorRole) (entry *models.QueueEntry, err error) {
	defer func() { s.observe(ctx, "remove_entry", "", err) }()

	if !role.CanForceRemove() {
		return nil, qerrors.ErrForbidden
	}

	return s.transition(ctx, entryID, queue.EventLeave, "", func(e *models.QueueEntry) {
		e.RemovedBy = string(role)
	})
}

// SetBarberActive toggles a barber in one barbershop. Activation also deactivates the
// barber everywhere else within the same critical section, which spans every involved shop.
func (s *queueService) SetBarberActive(ctx context.Context, in SetBarberActiveInput) (err error) {
	defer func() { s.observe(ctx, "set_barber_active", in.BarbershopID, err) }()

	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}

	if _, err := s.shops.Get(ctx, in.BarbershopID); err != nil {
		return err
	}

	unlockBarber, err := s.coord.LockBarber(ctx, in.BarberID)
	if err != nil {
		return err
	}
	defer unlockBarber()

	// Only this barber's own activations change these assignments, and we hold its lock.
	current, err := s.barbers.ListByBarber(ctx, in.BarberID)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	involved := []string{in.BarbershopID}
	updates := []*models.BarberAssignment{{
		BarberID:     in.BarberID,
		BarbershopID: in.BarbershopID,
		Active:       in.Active,
		UpdatedAt:    now,
	}}
	events := []models.QueueEvent{{
		Type:         barberEventType(in.Active),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		OccurredAt:   now,
	}}

	if in.Active {
		for _, a := range current {
			if !a.Active || a.BarbershopID == in.BarbershopID {
				continue
			}
			involved = append(involved, a.BarbershopID)
			updates = append(updates, &models.BarberAssignment{
				BarberID:     in.BarberID,
				BarbershopID: a.BarbershopID,
				Active:       false,
				UpdatedAt:    now,
			})
			events = append(events, models.QueueEvent{
				Type:         models.EventBarberDeactivate,
				BarbershopID: a.BarbershopID,
				BarberID:     in.BarberID,
				OccurredAt:   now,
			})
		}
	}

	unlockShops, err := s.coord.LockShops(ctx, involved)
	if err != nil {
		return err
	}
	err = s.barbers.SaveAll(ctx, updates)
	unlockShops()
	if err != nil {
		return err
	}

	s.publish(ctx, events)

	s.l.Info(ctx, "Barber availability changed",
		"barber_id", in.BarberID,
		"barbershop_id", in.BarbershopID,
		"active", in.Active,
		"deactivated_elsewhere", len(involved)-1,
	)

	return nil
}

func (s *queueService) ListActiveQueue(ctx context.Context, shopID, viewerBarberID string, status models.EntryStatus) (*ActiveQueueOutput, error) {
	if status != "" && !status.IsActive() {
		return nil, fmt.Errorf("%w: %q entries are not in the active queue", qerrors.ErrInvalidInput, status)
	}

	snap, err := s.snapshot(ctx, shopID)
	if err != nil {
		return nil, err
	}

	items := snap.View(viewerBarberID)
	if status != "" {
		filtered := make([]queue.ViewItem, 0, len(items))
		for _, it := range items {
			if it.Status == status {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	return &ActiveQueueOutput{
		BarbershopID: shopID,
		Version:      snap.Version,
		Info:         snap.Info(),
		Entries:      items,
	}, nil
}

func (s *queueService) GetStats(ctx context.Context, shopID string, from, to time.Time) (*StatsOutput, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", qerrors.ErrInvalidInput)
	}

	snap, err := s.snapshot(ctx, shopID)
	if err != nil {
		return nil, err
	}

	terminal, err := s.entries.ListTerminal(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}

	out := &StatsOutput{
		BarbershopID:             shopID,
		From:                     from,
		To:                       to,
		Active:                   snap.Info(),
		ConfiguredServiceMinutes: snap.Config.AverageServiceMinutes,
		ServedByBarber:           make(map[string]int),
	}

	var total time.Duration
	for _, e := range terminal {
		switch e.Status {
		case models.StatusDone:
			out.Served++
			if e.ServingBarberID != nil {
				out.ServedByBarber[*e.ServingBarberID]++
			}
			if e.StartedAt != nil && e.FinishedAt != nil {
				total += e.FinishedAt.Sub(*e.StartedAt)
			}
		case models.StatusNoShow:
			out.NoShows++
		case models.StatusLeft:
			out.Left++
		}
	}
	if out.Served > 0 {
		out.AverageServiceMinutes = total.Minutes() / float64(out.Served)
	}

	return out, nil
}

func (s *queueService) GetBarberCurrent(ctx context.Context, shopID, barberID string) (*models.QueueEntry, error) {
	snap, err := s.snapshot(ctx, shopID)
	if err != nil {
		return nil, err
	}

	e, ok := snap.HeldBy(barberID)
	if !ok {
		return nil, qerrors.ErrEntryNotFound
	}

	return e, nil
}

// ConfigureShop creates or replaces a barbershop's configuration and republishes its
// snapshot so estimates pick up the new average immediately.
func (s *queueService) ConfigureShop(ctx context.Context, in ConfigureShopInput) (err error) {
	defer func() { s.observe(ctx, "configure_shop", in.BarbershopID, err) }()

	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}

	return s.withShop(ctx, in.BarbershopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		cfg := &models.ShopConfig{
			BarbershopID:          in.BarbershopID,
			AverageServiceMinutes: in.AverageServiceMinutes,
			MaxQueueLength:        in.MaxQueueLength,
		}
		if err := s.shops.Save(ctx, cfg); err != nil {
			return nil, err
		}
		_, err := s.commit(ctx, cfg)
		return nil, err
	})
}

// RefreshQueue reloads the barbershop from the store, repairs any stale position numbering
// and republishes its snapshot.
func (s *queueService) RefreshQueue(ctx context.Context, shopID string) (*queue.QueueInfo, error) {
	var info queue.QueueInfo
	err := s.withShop(ctx, shopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		cfg, err := s.shops.Get(ctx, shopID)
		if err != nil {
			return nil, err
		}
		snap, err := s.commit(ctx, cfg)
		if err != nil {
			return nil, err
		}
		info = snap.Info()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *queueService) ListBarbershops(ctx context.Context) ([]string, error) {
	cfgs, err := s.shops.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(cfgs))
	for i, c := range cfgs {
		ids[i] = c.BarbershopID
	}
	return ids, nil
}

// holds reports whether the barber has a called or in-service client in any barbershop
// they have ever been assigned to.
func (s *queueService) holds(ctx context.Context, barberID string) (bool, error) {
	assignments, err := s.barbers.ListByBarber(ctx, barberID)
	if err != nil {
		return false, err
	}

	for _, a := range assignments {
		active, err := s.entries.ListActive(ctx, a.BarbershopID)
		if err != nil {
			return false, err
		}
		for _, e := range active {
			if e.HeldBy(barberID) {
				return true, nil
			}
		}
	}

	return false, nil
}

// transition applies ev to one entry under its barbershop's lock. mutate runs after the
// state machine accepted the event.
func (s *queueService) transition(
	ctx context.Context,
	entryID string,
	ev queue.Event,
	barberID string,
	mutate func(e *models.QueueEntry),
) (*models.QueueEntry, error) {
	cur, err := s.entries.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}
	shopID := cur.BarbershopID

	var result *models.QueueEntry
	err = s.withShop(ctx, shopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		cfg, err := s.shops.Get(ctx, shopID)
		if err != nil {
			return nil, err
		}

		now := s.clock.Now()
		updated, err := s.entries.Update(ctx, entryID, func(e *models.QueueEntry) error {
			if err := queue.Apply(e, ev, barberID, now); err != nil {
				return err
			}
			if mutate != nil {
				mutate(e)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if updated.IsTerminal() {
			if err := s.tokens.Revoke(ctx, updated.TokenHash); err != nil {
				s.l.Warnf(ctx, "service.queueService.transition: token revoke failed for %s: %v", entryID, err)
			}
		}

		snap, err := s.commit(ctx, cfg)
		if err != nil {
			return nil, err
		}

		result = updated
		if se, ok := snap.Entry(entryID); ok {
			result = se
		}

		actor := barberID
		if updated.ServingBarberID != nil {
			actor = *updated.ServingBarberID
		}

		return []models.QueueEvent{{
			Type:         eventTypeFor(ev),
			BarbershopID: shopID,
			EntryID:      entryID,
			BarberID:     actor,
			Status:       result.Status,
			Position:     result.Position,
			QueueLength:  snap.Len(),
			OccurredAt:   now,
		}}, nil
	})
	if err != nil {
		return nil, err
	}

	s.l.Info(ctx, "Queue entry transitioned",
		"barbershop_id", shopID,
		"entry_id", entryID,
		"status", result.Status,
	)

	return result, nil
}

// withShop runs fn under the barbershop lock and publishes the events it returns once
// the lock is released.
func (s *queueService) withShop(ctx context.Context, shopID string, fn func(ctx context.Context) ([]models.QueueEvent, error)) error {
	if shopID == "" {
		return fmt.Errorf("%w: barbershop id is required", qerrors.ErrInvalidInput)
	}

	unlock, err := s.coord.LockShop(ctx, shopID)
	if err != nil {
		return err
	}

	events, err := fn(ctx)
	unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// commit renumbers the barbershop's active entries, persists changed positions and
// publishes a fresh snapshot. Callers must hold the barbershop lock.
func (s *queueService) commit(ctx context.Context, cfg *models.ShopConfig) (*queue.Snapshot, error) {
	shopID := cfg.BarbershopID

	active, err := s.entries.ListActive(ctx, shopID)
	if err != nil {
		s.snaps.Delete(shopID)
		return nil, err
	}

	if changed := queue.Renumber(active); len(changed) > 0 {
		if err := s.entries.UpdatePositions(ctx, shopID, changed); err != nil {
			s.snaps.Delete(shopID)
			return nil, err
		}
	}

	var version uint64 = 1
	if prev, ok := s.snaps.Load(shopID); ok {
		version = prev.(*queue.Snapshot).Version + 1
	}

	snap := queue.NewSnapshot(*cfg, active, version, s.clock.Now())
	s.snaps.Store(shopID, snap)

	info := snap.Info()
	monitoring.SetQueueLength(shopID, string(models.StatusWaiting), info.Waiting)
	monitoring.SetQueueLength(shopID, string(models.StatusCalled), info.Called)
	monitoring.SetQueueLength(shopID, string(models.StatusInService), info.InService)

	return snap, nil
}

// snapshot returns the published snapshot, building it under the lock on first use.
func (s *queueService) snapshot(ctx context.Context, shopID string) (*queue.Snapshot, error) {
	if v, ok := s.snaps.Load(shopID); ok {
		return v.(*queue.Snapshot), nil
	}

	var snap *queue.Snapshot
	err := s.withShop(ctx, shopID, func(ctx context.Context) ([]models.QueueEvent, error) {
		if v, ok := s.snaps.Load(shopID); ok {
			snap = v.(*queue.Snapshot)
			return nil, nil
		}
		cfg, err := s.shops.Get(ctx, shopID)
		if err != nil {
			return nil, err
		}
		snap, err = s.commit(ctx, cfg)
		return nil, err
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// publish is best effort: the transition has already been committed.
func (s *queueService) publish(ctx context.Context, events []models.QueueEvent) {
	for _, e := range events {
		if err := s.prod.PublishQueueEvent(ctx, e); err != nil {
			s.l.Warnf(ctx, "service.queueService.publish: %s for %s: %v", e.Type, e.BarbershopID, err)
		}
	}
}

func (s *queueService) observe(ctx context.Context, op, shopID string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case qerrors.IsExpected(err):
		result = "rejected"
		s.l.Debugf(ctx, "service.queueService.%s: %v", op, err)
	default:
		result = "error"
		s.l.Errorf(ctx, "service.queueService.%s: %v", op, err)
	}
	monitoring.RecordOperation(op, shopID, result)
}

// ParseStatusFilter normalises an optional status filter taken from a request. Legacy
// spellings are accepted; an empty value means no filter.
func ParseStatusFilter(raw string) (models.EntryStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	status, err := models.ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}
	if !status.IsActive() {
		return "", fmt.Errorf("%w: %q entries are not in the active queue", qerrors.ErrInvalidInput, status)
	}

	return status, nil
}

func eventTypeFor(ev queue.Event) models.QueueEventType {
	switch ev {
	case queue.EventCall:
		return models.EventCalled
	case queue.EventStart:
		return models.EventStarted
	case queue.EventFinish:
		return models.EventFinished
	case queue.EventNoShow:
		return models.EventNoShow
	default:
		return models.EventLeft
	}
}

func barberEventType(active bool) models.QueueEventType {
	if active {
		return models.EventBarberActivated
	}
	return models.EventBarberDeactivate
}
