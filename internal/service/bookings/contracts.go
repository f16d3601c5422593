package bookings

import (
	"context"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateFields(ctx context.Context, id int64, update domain.BookingUpdate) error
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int64) error
}

// RouteRepository интерфейс репозитория маршрутов (нужен для данных билета)
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
