package support

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	supportService "github.com/avdeyev/BusPark-BookingService/internal/service/support"
	"github.com/avdeyev/BusPark-BookingService/internal/service/support/models"
)

const (
	msgInvalidTicketID    = "некорректный ID обращения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "обращение не найдено"
	msgInvalidInput       = "некорректные данные обращения"
)

type Handler struct {
	service SupportService
	logger  Logger
}

func NewHandler(service SupportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/support/tickets
// Доступно без аутентификации
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support/tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /support/tickets", err)
		return
	}

	h.logger.Info("POST /support/tickets - Ticket created: ticket_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/support/tickets?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		h.respondError(w, "GET /support/tickets", err)
		return
	}

	h.logger.Info("GET /support/tickets - Retrieved %d tickets", len(result.Tickets))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/support/tickets/{ticketId}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ticketID, err := strconv.ParseInt(mux.Vars(r)["ticketId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /support/tickets/{id}/status - Invalid ticket ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTicketID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /support/tickets/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), ticketID, &req); err != nil {
		h.respondError(w, "PATCH /support/tickets/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /support/tickets/{id}/status - Ticket updated: ticket_id=%d, status=%s",
		ticketID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, supportService.ErrTicketNotFound):
		h.logger.Warn("%s - Ticket not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, supportService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
