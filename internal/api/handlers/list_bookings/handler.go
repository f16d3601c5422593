package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidQuery = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?routeId=&startDate=&endDate=&status=&includeCancelled=
// Административная выборка с фильтрацией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if routeID := query.Get("routeId"); routeID != "" {
		id, err := strconv.ParseInt(routeID, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RouteID = &id
	}
	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}
	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if include := query.Get("includeCancelled"); include != "" {
		parsed, err := strconv.ParseBool(include)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = parsed
	}

	return req, nil
}
