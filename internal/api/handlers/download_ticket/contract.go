package download_ticket

import (
	"context"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetTicket(ctx context.Context, bookingID int64) (*models.TicketResponse, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
