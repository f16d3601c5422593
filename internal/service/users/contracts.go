package users

import (
	"context"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id int64, name *string, phone *string, driver *domain.DriverProfile) error
	Delete(ctx context.Context, id int64) error
}

// TokenManager интерфейс выпуска access-токенов
type TokenManager interface {
	Issue(userID int64, role string, now time.Time) (string, error)
}

// RefreshTokenStore интерфейс хранилища refresh-токенов
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, userID int64) error
	Pop(ctx context.Context, token string) (int64, error)
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
