package routes

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context) ([]*domain.Route, error)
	Update(ctx context.Context, id int64, update domain.RouteUpdate) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
