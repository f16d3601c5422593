package buses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	busService "github.com/avdeyev/BusPark-BookingService/internal/service/buses"
	"github.com/avdeyev/BusPark-BookingService/internal/service/buses/models"
)

const (
	msgInvalidBusID       = "некорректный ID автобуса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "автобус не найден"
	msgRouteNotFound      = "назначаемый маршрут не найден"
	msgDuplicate          = "автобус с таким номером уже существует"
	msgInvalidInput       = "некорректные данные автобуса"
)

type Handler struct {
	service BusService
	logger  Logger
}

func NewHandler(service BusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/buses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /buses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /buses", err)
		return
	}

	h.logger.Info("POST /buses - Bus created: bus_id=%d, number=%s", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/buses/{busId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	busID, ok := h.busID(w, r, "GET /buses/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), busID)
	if err != nil {
		h.respondError(w, "GET /buses/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/buses?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		h.respondError(w, "GET /buses", err)
		return
	}

	h.logger.Info("GET /buses - Retrieved %d buses", len(result.Buses))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PATCH /api/v1/buses/{busId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	busID, ok := h.busID(w, r, "PATCH /buses/{id}")
	if !ok {
		return
	}

	var req models.UpdateBusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /buses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), busID, &req)
	if err != nil {
		h.respondError(w, "PATCH /buses/{id}", err)
		return
	}

	h.logger.Info("PATCH /buses/{id} - Bus updated: bus_id=%d", busID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/buses/{busId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	busID, ok := h.busID(w, r, "DELETE /buses/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), busID); err != nil {
		h.respondError(w, "DELETE /buses/{id}", err)
		return
	}

	h.logger.Info("DELETE /buses/{id} - Bus deleted: bus_id=%d", busID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) busID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	busID, err := strconv.ParseInt(mux.Vars(r)["busId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid bus ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidBusID)
		return 0, false
	}
	return busID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, busService.ErrBusNotFound):
		h.logger.Warn("%s - Bus not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, busService.ErrRouteNotFound):
		h.logger.Warn("%s - Route not found", op)
		handlers.RespondBadRequest(w, msgRouteNotFound)

	case errors.Is(err, busService.ErrDuplicateNumber):
		h.logger.Warn("%s - Duplicate bus number", op)
		handlers.RespondBadRequest(w, msgDuplicate)

	case errors.Is(err, busService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
