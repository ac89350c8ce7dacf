package service

import (
	"time"

	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/queue"
)

type EnterQueueInput struct {
	BarbershopID      string  `json:"barbershop_id" validate:"required"`
	ClientName        string  `json:"client_name" validate:"required,min=1,max=100"`
	ClientPhone       string  `json:"client_phone" validate:"required,phone"`
	RequestedBarberID *string `json:"requested_barber_id,omitempty" validate:"omitempty,min=1"`
}

type EnterQueueOutput struct {
	EntryID          string    `json:"entry_id"`
	Token            string    `json:"token"`
	Position         int       `json:"position"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	QueueLength      int       `json:"queue_length"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TokenExpiresAt   time.Time `json:"token_expires_at"`
}

type QueueStatusOutput struct {
	EntryID          string             `json:"entry_id"`
	BarbershopID     string             `json:"barbershop_id"`
	Status           models.EntryStatus `json:"status"`
	Position         int                `json:"position"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	QueueLength      int                `json:"queue_length"`
	ServingBarberID  *string            `json:"serving_barber_id,omitempty"`
	ArrivalTime      time.Time          `json:"arrival_time"`
}

type ActiveQueueOutput struct {
	BarbershopID string           `json:"barbershop_id"`
	Version      uint64           `json:"version"`
	Info         queue.QueueInfo  `json:"info"`
	Entries      []queue.ViewItem `json:"entries"`
}

type StatsOutput struct {
	BarbershopID             string          `json:"barbershop_id"`
	From                     time.Time       `json:"from"`
	To                       time.Time       `json:"to"`
	Active                   queue.QueueInfo `json:"active"`
	Served                   int             `json:"served"`
	NoShows                  int             `json:"no_shows"`
	Left                     int             `json:"left"`
	AverageServiceMinutes    float64         `json:"average_service_minutes"`
	ConfiguredServiceMinutes int             `json:"configured_service_minutes"`
	ServedByBarber           map[string]int  `json:"served_by_barber"`
}

type SetBarberActiveInput struct {
	BarberID     string `json:"barber_id" validate:"required"`
	BarbershopID string `json:"barbershop_id" validate:"required"`
	Active       bool   `json:"active"`
}

type ConfigureShopInput struct {
	BarbershopID          string `json:"barbershop_id" validate:"required"`
	AverageServiceMinutes int    `json:"average_service_minutes" validate:"required,gt=0,lte=480"`
	MaxQueueLength        int    `json:"max_queue_length" validate:"required,gt=0,lte=1000"`
}
