package models

import "time"

type QueueEntry struct {
	ID                string      `json:"id"`
	BarbershopID      string      `json:"barbershop_id"`
	ClientName        string      `json:"client_name"`
	ClientPhone       string      `json:"client_phone"`
	RequestedBarberID *string     `json:"requested_barber_id,omitempty"`
	Status            EntryStatus `json:"status"`
	ArrivalTime       time.Time   `json:"arrival_time"`
	Seq               int64       `json:"seq"`
	Position          int         `json:"position"`
	ServingBarberID   *string     `json:"serving_barber_id,omitempty"`
	CalledAt          *time.Time  `json:"called_at,omitempty"`
	StartedAt         *time.Time  `json:"started_at,omitempty"`
	FinishedAt        *time.Time  `json:"finished_at,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	RemovedBy         string      `json:"removed_by,omitempty"`
	TokenHash         string      `json:"token_hash,omitempty"`
	Token             string      `json:"-"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// IsGeneral reports whether the entry can be served by any active barber.
func (e *QueueEntry) IsGeneral() bool {
	return e.RequestedBarberID == nil || *e.RequestedBarberID == ""
}

func (e *QueueEntry) IsTerminal() bool {
	return e.Status.IsTerminal()
}

// IsPositioned reports whether the entry takes part in position numbering.
func (e *QueueEntry) IsPositioned() bool {
	return e.Status == StatusWaiting || e.Status == StatusCalled
}

func (e *QueueEntry) HeldBy(barberID string) bool {
	return e.ServingBarberID != nil && *e.ServingBarberID == barberID
}

// Clone returns a deep copy so callers never share pointers with a store.
func (e *QueueEntry) Clone() *QueueEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.RequestedBarberID = cloneString(e.RequestedBarberID)
	c.ServingBarberID = cloneString(e.ServingBarberID)
	c.CalledAt = cloneTime(e.CalledAt)
	c.StartedAt = cloneTime(e.StartedAt)
	c.FinishedAt = cloneTime(e.FinishedAt)
	return &c
}

// ArrivedBefore orders entries by arrival time, breaking ties by insertion sequence.
func (e *QueueEntry) ArrivedBefore(o *QueueEntry) bool {
	if !e.ArrivalTime.Equal(o.ArrivalTime) {
		return e.ArrivalTime.Before(o.ArrivalTime)
	}
	return e.Seq < o.Seq
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
