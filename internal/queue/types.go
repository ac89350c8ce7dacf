package queue

import "github.com/vogiaan1904/barberqueue/internal/models"

// ViewItem is an active entry as seen by one viewer: its global arrival rank plus
// whether the viewing barber may serve it.
type ViewItem struct {
	*models.QueueEntry
	Servable         bool `json:"servable"`
	EstimatedMinutes int  `json:"estimated_minutes"`
}

type QueueInfo struct {
	BarbershopID   string `json:"barbershop_id"`
	Waiting        int    `json:"waiting"`
	Called         int    `json:"called"`
	InService      int    `json:"in_service"`
	Length         int    `json:"length"`
	MaxQueueLength int    `json:"max_queue_length"`
}
