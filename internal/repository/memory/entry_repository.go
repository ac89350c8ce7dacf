package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
)

// entryRepository keeps entries in an arena indexed by id with a per-shop index.
// The mutex only protects the maps; transactional ordering is the coordinator's job.
type entryRepository struct {
	mu      sync.RWMutex
	entries map[string]*models.QueueEntry
	byShop  map[string][]string
	seq     map[string]int64
}

func NewEntryRepository() repository.EntryRepository {
	return &entryRepository{
		entries: make(map[string]*models.QueueEntry),
		byShop:  make(map[string][]string),
		seq:     make(map[string]int64),
	}
}

func (r *entryRepository) Append(ctx context.Context, e *models.QueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.ID]; ok {
		return qerrors.ErrConflict
	}

	r.seq[e.BarbershopID]++
	e.Seq = r.seq[e.BarbershopID]
	r.entries[e.ID] = e.Clone()
	r.byShop[e.BarbershopID] = append(r.byShop[e.BarbershopID], e.ID)

	return nil
}

func (r *entryRepository) Get(ctx context.Context, id string) (*models.QueueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, qerrors.ErrEntryNotFound
	}

	return e.Clone(), nil
}

func (r *entryRepository) ListActive(ctx context.Context, shopID string) ([]*models.QueueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.QueueEntry
	for _, id := range r.byShop[shopID] {
		if e := r.entries[id]; !e.IsTerminal() {
			out = append(out, e.Clone())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArrivedBefore(out[j])
	})

	return out, nil
}

func (r *entryRepository) Update(ctx context.Context, id string, fn func(e *models.QueueEntry) error) (*models.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.entries[id]
	if !ok {
		return nil, qerrors.ErrEntryNotFound
	}
	if cur.IsTerminal() {
		return nil, qerrors.ErrInvalidState
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	r.entries[id] = next

	return next.Clone(), nil
}

func (r *entryRepository) UpdatePositions(ctx context.Context, shopID string, positions map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, pos := range positions {
		e, ok := r.entries[id]
		if !ok || e.BarbershopID != shopID {
			return qerrors.ErrEntryNotFound
		}
		e.Position = pos
	}

	return nil
}

func (r *entryRepository) ListTerminal(ctx context.Context, shopID string, from, to time.Time) ([]*models.QueueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.QueueEntry
	for _, id := range r.byShop[shopID] {
		e := r.entries[id]
		if !e.IsTerminal() || e.FinishedAt == nil {
			continue
		}
		if e.FinishedAt.Before(from) || e.FinishedAt.After(to) {
			continue
		}
		out = append(out, e.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishedAt.Before(*out[j].FinishedAt)
	})

	return out, nil
}
