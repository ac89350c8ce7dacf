package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEntryNotFound = fmt.Errorf("queue entry %w", ErrNotFound)
	ErrTokenNotFound = fmt.Errorf("token %w", ErrNotFound)
	ErrShopNotFound  = fmt.Errorf("barbershop %w", ErrNotFound)

	ErrInvalidState      = errors.New("transition not allowed from current status")
	ErrConflict          = errors.New("barber already holds an active client")
	ErrEmptyQueue        = errors.New("no eligible client waiting")
	ErrQueueFull         = errors.New("queue is full")
	ErrTokenExpired      = errors.New("token expired")
	ErrBusy              = errors.New("barbershop is busy, try again")
	ErrForbidden         = errors.New("action not allowed for this actor")
	ErrBarberUnavailable = errors.New("requested barber is not active in this barbershop")
	ErrInvalidInput      = errors.New("invalid input")
)

var expected = []error{
	ErrNotFound,
	ErrInvalidState,
	ErrConflict,
	ErrEmptyQueue,
	ErrQueueFull,
	ErrTokenExpired,
	ErrBusy,
	ErrForbidden,
	ErrBarberUnavailable,
	ErrInvalidInput,
}

// IsExpected reports whether err is a recoverable queue outcome that callers must handle explicitly.
func IsExpected(err error) bool {
	for _, e := range expected {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// InfrastructureError marks storage or broker failures. Callers surface them as retryable.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("infrastructure failure in %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func Infra(op string, err error) error {
	if err == nil {
		return nil
	}
	var ie *InfrastructureError
	if errors.As(err, &ie) || IsExpected(err) {
		return err
	}
	return &InfrastructureError{Op: op, Err: err}
}

func IsInfrastructure(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
