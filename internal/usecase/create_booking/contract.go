package create_booking

import (
	"context"
	"time"

	"github.com/lithammer/shortuuid/v3"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetTakenSeats(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator интерфейс генерации публичных кодов бронирования
type CodeGenerator interface {
	Generate() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ShortUUIDGenerator генератор кодов бронирования на основе shortuuid
type ShortUUIDGenerator struct{}

// Generate возвращает новый код бронирования
func (ShortUUIDGenerator) Generate() string {
	return "BK-" + shortuuid.New()
}
