package models

import "time"

// ShopConfig is owned by the barbershop CRUD collaborator; the queue only reads it.
type ShopConfig struct {
	BarbershopID          string `json:"barbershop_id"`
	AverageServiceMinutes int    `json:"average_service_minutes"`
	MaxQueueLength        int    `json:"max_queue_length"`
}

type BarberAssignment struct {
	BarberID     string    `json:"barber_id"`
	BarbershopID string    `json:"barbershop_id"`
	Active       bool      `json:"active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ActorRole string

const (
	RoleAdmin  ActorRole = "admin"
	RoleBarber ActorRole = "barber"
	RoleClient ActorRole = "client"
)

func (r ActorRole) CanForceRemove() bool {
	return r == RoleAdmin || r == RoleBarber
}
