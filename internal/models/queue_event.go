package models

import "time"

type QueueEventType string

const (
	EventEntered          QueueEventType = "entered"
	EventCalled           QueueEventType = "called"
	EventStarted          QueueEventType = "started"
	EventFinished         QueueEventType = "finished"
	EventLeft             QueueEventType = "left"
	EventNoShow           QueueEventType = "no_show"
	EventBarberActivated  QueueEventType = "barber_activated"
	EventBarberDeactivate QueueEventType = "barber_deactivated"
)

// QueueEvent describes a committed state change of a barbershop queue.
type QueueEvent struct {
	Type         QueueEventType `json:"type"`
	BarbershopID string         `json:"barbershop_id"`
	EntryID      string         `json:"entry_id,omitempty"`
	BarberID     string         `json:"barber_id,omitempty"`
	Status       EntryStatus    `json:"status,omitempty"`
	Position     int            `json:"position,omitempty"`
	QueueLength  int            `json:"queue_length"`
	OccurredAt   time.Time      `json:"occurred_at"`
}
