package support

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// TicketRepository интерфейс репозитория обращений в поддержку
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error)
	List(ctx context.Context, status *domain.TicketStatus) ([]*domain.SupportTicket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
