package http

type enterQueueRequest struct {
	ClientName        string  `json:"client_name" validate:"required"`
	ClientPhone       string  `json:"client_phone" validate:"required"`
	RequestedBarberID *string `json:"requested_barber_id,omitempty"`
}

type setBarberActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type barberActionRequest struct {
	BarberID string `json:"barber_id" validate:"required"`
}

type finishServiceRequest struct {
	BarberID string `json:"barber_id" validate:"required"`
	Notes    string `json:"notes" validate:"max=500"`
}

type leaveQueueResponse struct {
	Message string `json:"message"`
}
