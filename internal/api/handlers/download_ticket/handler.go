package download_ticket

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings"
	"github.com/avdeyev/BusPark-BookingService/pkg/ticketpdf"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

type Handler struct {
	service BookingService
	clock   TimeProvider
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   realTime{},
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/ticket
// Отдает печатный PDF-билет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/ticket - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	ticket, err := h.service.GetTicket(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound), errors.Is(err, bookings.ErrRouteNotFound):
			h.logger.Warn("GET /bookings/{id}/ticket - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/ticket - Failed to build ticket: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	pdf, err := ticketpdf.Render(ticketpdf.Ticket{
		BookingCode:   ticket.BookingCode,
		PassengerName: ticket.PassengerName,
		From:          ticket.From,
		To:            ticket.To,
		TravelDate:    ticket.TravelDate,
		Seats:         ticket.Seats,
		TotalAmount:   ticket.TotalAmount,
		PaymentStatus: ticket.PaymentStatus,
		IssuedAt:      h.clock.Now(),
	})
	if err != nil {
		h.logger.Error("GET /bookings/{id}/ticket - Failed to render PDF: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id}/ticket - Ticket rendered: booking_id=%d, code=%s",
		bookingID, ticket.BookingCode)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "ticket-"+ticket.BookingCode+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
