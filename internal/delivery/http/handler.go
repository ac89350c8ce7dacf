package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/service"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/response"
	"github.com/vogiaan1904/barberqueue/pkg/util"
)

// TokenHeader carries the client's queue token on status requests.
const TokenHeader = "X-Queue-Token"

const maxBodyBytes = 1 << 16

type HTTPHandler struct {
	qSvc      service.QueueService
	l         logger.Logger
	validator *validator.Validate
	clock     util.Clock
}

func NewHTTPHandler(qSvc service.QueueService, l logger.Logger, clock util.Clock) *HTTPHandler {
	return &HTTPHandler{
		qSvc:      qSvc,
		l:         l,
		validator: validator.New(),
		clock:     clock,
	}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "barberqueue",
	})
}

func (h *HTTPHandler) EnterQueue(w http.ResponseWriter, r *http.Request) {
	var req enterQueueRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	out, err := h.qSvc.EnterQueue(r.Context(), service.EnterQueueInput{
		BarbershopID:      chi.URLParam(r, "shopId"),
		ClientName:        req.ClientName,
		ClientPhone:       req.ClientPhone,
		RequestedBarberID: req.RequestedBarberID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, out)
}

func (h *HTTPHandler) ListActiveQueue(w http.ResponseWriter, r *http.Request) {
	status, err := service.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out, err := h.qSvc.ListActiveQueue(r.Context(), chi.URLParam(r, "shopId"), r.URL.Query().Get("viewer"), status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, out)
}

// GetStats defaults to the current day when from/to are omitted.
func (h *HTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	from, err := util.ParseTimeOr(r.URL.Query().Get("from"), util.StartOfDay(now))
	if err != nil {
		h.respondError(w, r, fmt.Errorf("%w: from: %v", qerrors.ErrInvalidInput, err))
		return
	}
	to, err := util.ParseTimeOr(r.URL.Query().Get("to"), now)
	if err != nil {
		h.respondError(w, r, fmt.Errorf("%w: to: %v", qerrors.ErrInvalidInput, err))
		return
	}

	out, err := h.qSvc.GetStats(r.Context(), chi.URLParam(r, "shopId"), from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, out)
}

func (h *HTTPHandler) CallNext(w http.ResponseWriter, r *http.Request) {
	e, err := h.qSvc.CallNext(r.Context(), chi.URLParam(r, "shopId"), chi.URLParam(r, "barberId"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) GetBarberCurrent(w http.ResponseWriter, r *http.Request) {
	e, err := h.qSvc.GetBarberCurrent(r.Context(), chi.URLParam(r, "shopId"), chi.URLParam(r, "barberId"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) SetBarberActive(w http.ResponseWriter, r *http.Request) {
	var req setBarberActiveRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	in := service.SetBarberActiveInput{
		BarberID:     chi.URLParam(r, "barberId"),
		BarbershopID: chi.URLParam(r, "shopId"),
		Active:       *req.Active,
	}
	if err := h.qSvc.SetBarberActive(r.Context(), in); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, in)
}

func (h *HTTPHandler) StartService(w http.ResponseWriter, r *http.Request) {
	var req barberActionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	e, err := h.qSvc.StartService(r.Context(), chi.URLParam(r, "entryId"), req.BarberID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) FinishService(w http.ResponseWriter, r *http.Request) {
	var req finishServiceRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	e, err := h.qSvc.FinishService(r.Context(), chi.URLParam(r, "entryId"), req.BarberID, req.Notes)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) NoShow(w http.ResponseWriter, r *http.Request) {
	var req barberActionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	e, err := h.qSvc.NoShow(r.Context(), chi.URLParam(r, "entryId"), req.BarberID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	role := models.ActorRole(strings.ToLower(r.URL.Query().Get("actor_role")))

	e, err := h.qSvc.RemoveEntry(r.Context(), chi.URLParam(r, "entryId"), role)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, e)
}

func (h *HTTPHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		h.respondError(w, r, errMissingToken)
		return
	}

	out, err := h.qSvc.GetStatusByToken(r.Context(), token)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, out)
}

func (h *HTTPHandler) LeaveQueue(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		h.respondError(w, r, errMissingToken)
		return
	}

	if err := h.qSvc.LeaveQueue(r.Context(), token); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, leaveQueueResponse{Message: "Successfully left the queue"})
}

// Helper functions

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", qerrors.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrInvalidInput, err)
	}
	return nil
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.l.Error(r.Context(), "Failed to encode JSON response", "error", err)
	}
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, resp := response.ParseHTTPError(mapHTTPError(err))

	switch {
	case errors.Is(err, qerrors.ErrInvalidInput):
		resp.Errors = err.Error()
		h.l.Debug(r.Context(), "Rejected request", "path", r.URL.Path, "error", err)
	case statusCode >= http.StatusInternalServerError:
		h.l.Error(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	default:
		h.l.Debug(r.Context(), "Request not fulfilled", "path", r.URL.Path, "error", err)
	}

	h.respondJSON(w, r, statusCode, resp)
}
