package queue

import "github.com/vogiaan1904/barberqueue/internal/models"

// EstimateMinutes is the number of waiting entries ahead of e in the same barber pool times
// the average service time. A general entry competes with everything ahead of it; an entry
// for barber X only with general and X-specific entries. Called or in-service entries wait 0.
func EstimateMinutes(e *models.QueueEntry, active []*models.QueueEntry, avgMinutes int) int {
	if e.Status != models.StatusWaiting {
		return 0
	}

	ahead := 0
	for _, o := range active {
		if o.ID == e.ID || o.Status != models.StatusWaiting || !o.ArrivedBefore(e) {
			continue
		}
		if e.IsGeneral() || IsEligible(*e.RequestedBarberID, o) {
			ahead++
		}
	}

	return ahead * avgMinutes
}
