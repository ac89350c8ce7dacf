package queue

import (
	"time"

	"github.com/vogiaan1904/barberqueue/internal/models"
)

// Renumber assigns positions 1..N to waiting and called entries in arrival order and 0 to
// every other active entry. It mutates entries in place and returns the ids whose
// position changed together with their new value.
func Renumber(entries []*models.QueueEntry) map[string]int {
	changed := make(map[string]int)
	pos := 0
	for _, e := range OrderedByArrival(entries) {
		want := 0
		if e.IsPositioned() {
			pos++
			want = pos
		}
		if e.Position != want {
			e.Position = want
			changed[e.ID] = want
		}
	}
	return changed
}

// Snapshot is an immutable view of one barbershop's active queue. A new one is
// published after every committed mutation; readers never see a partially renumbered queue.
type Snapshot struct {
	BarbershopID string
	Config       models.ShopConfig
	Version      uint64
	TakenAt      time.Time

	entries []*models.QueueEntry
	byID    map[string]*models.QueueEntry
}

// NewSnapshot takes ownership of entries; callers must not modify them afterwards.
func NewSnapshot(cfg models.ShopConfig, entries []*models.QueueEntry, version uint64, at time.Time) *Snapshot {
	ordered := OrderedByArrival(entries)
	byID := make(map[string]*models.QueueEntry, len(ordered))
	for _, e := range ordered {
		byID[e.ID] = e
	}
	return &Snapshot{
		BarbershopID: cfg.BarbershopID,
		Config:       cfg,
		Version:      version,
		TakenAt:      at,
		entries:      ordered,
		byID:         byID,
	}
}

// Entries returns deep copies in arrival order.
func (s *Snapshot) Entries() []*models.QueueEntry {
	out := make([]*models.QueueEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

func (s *Snapshot) Entry(id string) (*models.QueueEntry, bool) {
	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Len counts every non-terminal entry, including in-service ones.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// HeldBy returns the entry barberID is currently calling or serving, if any.
func (s *Snapshot) HeldBy(barberID string) (*models.QueueEntry, bool) {
	for _, e := range s.entries {
		if (e.Status == models.StatusCalled || e.Status == models.StatusInService) && e.HeldBy(barberID) {
			return e.Clone(), true
		}
	}
	return nil, false
}

func (s *Snapshot) Estimate(id string) int {
	e, ok := s.byID[id]
	if !ok {
		return 0
	}
	return EstimateMinutes(e, s.entries, s.Config.AverageServiceMinutes)
}

func (s *Snapshot) View(viewerBarberID string) []ViewItem {
	return ByTimeView(viewerBarberID, s.Entries(), s.Config.AverageServiceMinutes)
}

func (s *Snapshot) Info() QueueInfo {
	info := QueueInfo{
		BarbershopID:   s.BarbershopID,
		Length:         len(s.entries),
		MaxQueueLength: s.Config.MaxQueueLength,
	}
	for _, e := range s.entries {
		switch e.Status {
		case models.StatusWaiting:
			info.Waiting++
		case models.StatusCalled:
			info.Called++
		case models.StatusInService:
			info.InService++
		}
	}
	return info
}
