package grpc

import (
	"encoding/json"
	"fmt"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

type enterQueueRequest struct {
	BarbershopID      string  `json:"barbershop_id"`
	ClientName        string  `json:"client_name"`
	ClientPhone       string  `json:"client_phone"`
	RequestedBarberID *string `json:"requested_barber_id"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type barberRequest struct {
	BarbershopID string `json:"barbershop_id"`
	BarberID     string `json:"barber_id"`
}

type entryActionRequest struct {
	EntryID  string `json:"entry_id"`
	BarberID string `json:"barber_id"`
	Notes    string `json:"notes"`
}

type removeEntryRequest struct {
	EntryID   string `json:"entry_id"`
	ActorRole string `json:"actor_role"`
}

type setBarberActiveRequest struct {
	BarbershopID string `json:"barbershop_id"`
	BarberID     string `json:"barber_id"`
	Active       bool   `json:"active"`
}

type listActiveQueueRequest struct {
	BarbershopID string `json:"barbershop_id"`
	Viewer       string `json:"viewer"`
	Status       string `json:"status"`
}

type statsRequest struct {
	BarbershopID string `json:"barbershop_id"`
	From         string `json:"from"`
	To           string `json:"to"`
}

// fromStruct decodes a Struct document into dst through its JSON form.
func fromStruct(in *structpb.Struct, dst any) error {
	b, err := in.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}
	return nil
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return out, nil
}
