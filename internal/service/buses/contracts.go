package buses

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// BusRepository интерфейс репозитория автобусов
type BusRepository interface {
	Create(ctx context.Context, bus *domain.Bus) (*domain.Bus, error)
	GetByID(ctx context.Context, id int64) (*domain.Bus, error)
	List(ctx context.Context, status *domain.BusStatus) ([]*domain.Bus, error)
	Update(ctx context.Context, id int64, update domain.BusUpdate) error
	Delete(ctx context.Context, id int64) error
}

// RouteRepository интерфейс репозитория маршрутов (проверка назначаемого маршрута)
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
