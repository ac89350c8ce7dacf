package kafka

import (
	"fmt"
	"time"

	"github.com/vogiaan1904/barberqueue/internal/models"
)

// Events published BY the queue service

type QueueEventMessage struct {
	Type         string    `json:"type"`
	BarbershopID string    `json:"barbershop_id"`
	EntryID      string    `json:"entry_id,omitempty"`
	BarberID     string    `json:"barber_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	Position     int       `json:"position,omitempty"`
	QueueLength  int       `json:"queue_length"`
	OccurredAt   time.Time `json:"occurred_at"`
	Timestamp    time.Time `json:"timestamp"`
}

var topicByEvent = map[models.QueueEventType]string{
	models.EventEntered:          TopicQueueEntered,
	models.EventCalled:           TopicQueueCalled,
	models.EventStarted:          TopicQueueStarted,
	models.EventFinished:         TopicQueueFinished,
	models.EventLeft:             TopicQueueLeft,
	models.EventNoShow:           TopicQueueNoShow,
	models.EventBarberActivated:  TopicBarberActivated,
	models.EventBarberDeactivate: TopicBarberDeactivated,
}

func TopicFor(t models.QueueEventType) (string, error) {
	topic, ok := topicByEvent[t]
	if !ok {
		return "", fmt.Errorf("no topic for event type %q", t)
	}
	return topic, nil
}

func NewQueueEventMessage(e models.QueueEvent) QueueEventMessage {
	return QueueEventMessage{
		Type:         string(e.Type),
		BarbershopID: e.BarbershopID,
		EntryID:      e.EntryID,
		BarberID:     e.BarberID,
		Status:       string(e.Status),
		Position:     e.Position,
		QueueLength:  e.QueueLength,
		OccurredAt:   e.OccurredAt,
	}
}

// Events consumed BY the queue service (from barber management and barbershop admin)

type BarberAvailabilityChangedEvent struct {
	BarberID     string    `json:"barber_id"`
	BarbershopID string    `json:"barbershop_id"`
	Active       bool      `json:"active"`
	Timestamp    time.Time `json:"timestamp"`
}

type BarbershopConfigUpdatedEvent struct {
	BarbershopID          string    `json:"barbershop_id"`
	AverageServiceMinutes int       `json:"average_service_minutes"`
	MaxQueueLength        int       `json:"max_queue_length"`
	Timestamp             time.Time `json:"timestamp"`
}
