package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	routeService "github.com/avdeyev/BusPark-BookingService/internal/service/routes"
	"github.com/avdeyev/BusPark-BookingService/internal/service/routes/models"
)

const (
	msgInvalidRouteID     = "некорректный ID маршрута"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "маршрут не найден"
	msgDuplicate          = "такой маршрут уже существует"
	msgInvalidInput       = "некорректные данные маршрута"
)

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/routes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /routes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /routes", err)
		return
	}

	h.logger.Info("POST /routes - Route created: route_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/routes/{routeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	routeID, ok := h.routeID(w, r, "GET /routes/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), routeID)
	if err != nil {
		h.respondError(w, "GET /routes/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/routes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /routes", err)
		return
	}

	h.logger.Info("GET /routes - Retrieved %d routes", len(result.Routes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PATCH /api/v1/routes/{routeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	routeID, ok := h.routeID(w, r, "PATCH /routes/{id}")
	if !ok {
		return
	}

	var req models.UpdateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /routes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), routeID, &req)
	if err != nil {
		h.respondError(w, "PATCH /routes/{id}", err)
		return
	}

	h.logger.Info("PATCH /routes/{id} - Route updated: route_id=%d", routeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/routes/{routeId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	routeID, ok := h.routeID(w, r, "DELETE /routes/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), routeID); err != nil {
		h.respondError(w, "DELETE /routes/{id}", err)
		return
	}

	h.logger.Info("DELETE /routes/{id} - Route deleted: route_id=%d", routeID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) routeID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	routeID, err := strconv.ParseInt(mux.Vars(r)["routeId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid route ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRouteID)
		return 0, false
	}
	return routeID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, routeService.ErrRouteNotFound):
		h.logger.Warn("%s - Route not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, routeService.ErrDuplicateRoute):
		h.logger.Warn("%s - Duplicate route", op)
		handlers.RespondBadRequest(w, msgDuplicate)

	case errors.Is(err, routeService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
