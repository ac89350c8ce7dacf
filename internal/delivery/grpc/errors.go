package grpc

import (
	"context"
	"errors"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	pkgErrors "github.com/vogiaan1904/barberqueue/pkg/errors"
	resp "github.com/vogiaan1904/barberqueue/pkg/response"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errInvalidInput      = pkgErrors.NewGRPCError("BQ001", "Invalid input", codes.InvalidArgument)
	errEntryNotFound     = pkgErrors.NewGRPCError("BQ002", "Queue entry not found", codes.NotFound)
	errTokenNotFound     = pkgErrors.NewGRPCError("BQ003", "Queue token not found", codes.NotFound)
	errShopNotFound      = pkgErrors.NewGRPCError("BQ004", "Barbershop not found", codes.NotFound)
	errInvalidState      = pkgErrors.NewGRPCError("BQ005", "Transition not allowed from current status", codes.FailedPrecondition)
	errConflict          = pkgErrors.NewGRPCError("BQ006", "Barber already holds an active client", codes.FailedPrecondition)
	errEmptyQueue        = pkgErrors.NewGRPCError("BQ007", "No eligible client waiting", codes.NotFound)
	errQueueFull         = pkgErrors.NewGRPCError("BQ008", "Queue is full", codes.ResourceExhausted)
	errTokenExpired      = pkgErrors.NewGRPCError("BQ009", "Queue token expired", codes.Unauthenticated)
	errBusy              = pkgErrors.NewGRPCError("BQ010", "Barbershop is busy, try again", codes.Unavailable)
	errForbidden         = pkgErrors.NewGRPCError("BQ011", "Action not allowed for this actor", codes.PermissionDenied)
	errBarberUnavailable = pkgErrors.NewGRPCError("BQ012", "Requested barber is not active in this barbershop", codes.FailedPrecondition)
	errUnavailable       = pkgErrors.NewGRPCError("BQ013", "Service temporarily unavailable", codes.Unavailable)
)

var grpcErrors = []struct {
	target error
	resp   *pkgErrors.GRPCError
}{
	{qerrors.ErrInvalidInput, errInvalidInput},
	{qerrors.ErrEntryNotFound, errEntryNotFound},
	{qerrors.ErrTokenNotFound, errTokenNotFound},
	{qerrors.ErrShopNotFound, errShopNotFound},
	{qerrors.ErrInvalidState, errInvalidState},
	{qerrors.ErrConflict, errConflict},
	{qerrors.ErrEmptyQueue, errEmptyQueue},
	{qerrors.ErrQueueFull, errQueueFull},
	{qerrors.ErrTokenExpired, errTokenExpired},
	{qerrors.ErrBusy, errBusy},
	{qerrors.ErrForbidden, errForbidden},
	{qerrors.ErrBarberUnavailable, errBarberUnavailable},
}

func mapGRPCError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	for _, m := range grpcErrors {
		if errors.Is(err, m.target) {
			return resp.ParseGRPCError(m.resp)
		}
	}
	if qerrors.IsInfrastructure(err) {
		return resp.ParseGRPCError(errUnavailable)
	}
	return resp.ParseGRPCError(err)
}
