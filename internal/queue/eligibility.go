package queue

import (
	"sort"

	"github.com/vogiaan1904/barberqueue/internal/models"
)

// IsEligible reports whether barberID may serve e: general entries are open to every
// barber, specific ones only to the requested barber.
func IsEligible(barberID string, e *models.QueueEntry) bool {
	return e.IsGeneral() || *e.RequestedBarberID == barberID
}

func EligibleFor(barberID string, entries []*models.QueueEntry) []*models.QueueEntry {
	out := make([]*models.QueueEntry, 0, len(entries))
	for _, e := range entries {
		if IsEligible(barberID, e) {
			out = append(out, e)
		}
	}
	return out
}

// OrderedByArrival returns a sorted copy; ties on arrival time fall back to insertion order.
func OrderedByArrival(entries []*models.QueueEntry) []*models.QueueEntry {
	out := make([]*models.QueueEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArrivedBefore(out[j])
	})
	return out
}

// NextFor picks the earliest-arrived waiting entry barberID may serve, or nil.
func NextFor(barberID string, entries []*models.QueueEntry) *models.QueueEntry {
	for _, e := range OrderedByArrival(entries) {
		if e.Status == models.StatusWaiting && IsEligible(barberID, e) {
			return e
		}
	}
	return nil
}

// ByTimeView lists every active entry in global arrival order. Servable is only set
// for a non-empty viewer; the view never reorders entries to favour the viewer.
func ByTimeView(viewerBarberID string, entries []*models.QueueEntry, avgMinutes int) []ViewItem {
	ordered := OrderedByArrival(entries)
	out := make([]ViewItem, 0, len(ordered))
	for _, e := range ordered {
		out = append(out, ViewItem{
			QueueEntry:       e,
			Servable:         viewerBarberID != "" && e.Status == models.StatusWaiting && IsEligible(viewerBarberID, e),
			EstimatedMinutes: EstimateMinutes(e, ordered, avgMinutes),
		})
	}
	return out
}
