package http

import (
	"errors"
	"net/http"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	pkgErrors "github.com/vogiaan1904/barberqueue/pkg/errors"
)

var (
	errInvalidInput      = pkgErrors.NewHTTPError(40001, "Invalid input", http.StatusBadRequest)
	errMissingToken      = pkgErrors.NewHTTPError(40101, "Queue token is required", http.StatusUnauthorized)
	errForbidden         = pkgErrors.NewHTTPError(40301, "Action not allowed for this actor", http.StatusForbidden)
	errEntryNotFound     = pkgErrors.NewHTTPError(40401, "Queue entry not found", http.StatusNotFound)
	errTokenNotFound     = pkgErrors.NewHTTPError(40402, "Queue token not found", http.StatusNotFound)
	errShopNotFound      = pkgErrors.NewHTTPError(40403, "Barbershop not found", http.StatusNotFound)
	errEmptyQueue        = pkgErrors.NewHTTPError(40404, "No eligible client waiting", http.StatusNotFound)
	errInvalidState      = pkgErrors.NewHTTPError(40901, "Transition not allowed from current status", http.StatusConflict)
	errConflict          = pkgErrors.NewHTTPError(40902, "Barber already holds an active client", http.StatusConflict)
	errQueueFull         = pkgErrors.NewHTTPError(40903, "Queue is full", http.StatusConflict)
	errTokenExpired      = pkgErrors.NewHTTPError(41001, "Queue token expired", http.StatusGone)
	errBarberUnavailable = pkgErrors.NewHTTPError(42201, "Requested barber is not active in this barbershop", http.StatusUnprocessableEntity)
	errBusy              = pkgErrors.NewHTTPError(50301, "Barbershop is busy, try again", http.StatusServiceUnavailable)
	errUnavailable       = pkgErrors.NewHTTPError(50302, "Service temporarily unavailable", http.StatusServiceUnavailable)
)

// Order matters: specific not-found sentinels are checked before the family.
var httpErrors = []struct {
	target error
	resp   *pkgErrors.HTTPError
}{
	{qerrors.ErrInvalidInput, errInvalidInput},
	{qerrors.ErrForbidden, errForbidden},
	{qerrors.ErrEntryNotFound, errEntryNotFound},
	{qerrors.ErrTokenNotFound, errTokenNotFound},
	{qerrors.ErrShopNotFound, errShopNotFound},
	{qerrors.ErrEmptyQueue, errEmptyQueue},
	{qerrors.ErrInvalidState, errInvalidState},
	{qerrors.ErrConflict, errConflict},
	{qerrors.ErrQueueFull, errQueueFull},
	{qerrors.ErrTokenExpired, errTokenExpired},
	{qerrors.ErrBarberUnavailable, errBarberUnavailable},
	{qerrors.ErrBusy, errBusy},
}

func mapHTTPError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	for _, m := range httpErrors {
		if errors.Is(err, m.target) {
			return m.resp
		}
	}
	if qerrors.IsInfrastructure(err) {
		return errUnavailable
	}
	return err
}
