package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings"
)

const msgNotFound = "бронирование не найдено"

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

// Handle GET /api/v1/bookings/{bookingId}
// В пути принимается либо числовой ID, либо публичный код бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idOrCode := vars["bookingId"]

	var err error
	var booking interface{}

	if bookingID, parseErr := strconv.ParseInt(idOrCode, 10, 64); parseErr == nil {
		booking, err = h.service.GetByID(r.Context(), bookingID)
	} else {
		booking, err = h.service.GetByCode(r.Context(), idOrCode)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%s", idOrCode)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: id=%s, error=%v", idOrCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved: id=%s", idOrCode)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
