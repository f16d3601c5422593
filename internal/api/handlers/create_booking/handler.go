package create_booking

import (
	"errors"
	"net/http"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	createBooking "github.com/avdeyev/BusPark-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты поездки, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRouteNotFound      = "маршрут не найден"
	msgSeatTaken          = "одно или несколько мест уже заняты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse travel date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSeatTaken):
			h.logger.Warn("POST /bookings - Seat taken: route_id=%d, date=%s", req.RouteID, req.TravelDate)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, createBooking.ErrRouteNotFound):
			h.logger.Warn("POST /bookings - Route not found: route_id=%d", req.RouteID)
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: route_id=%d, error=%v", req.RouteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s",
		result.ID, result.BookingCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
