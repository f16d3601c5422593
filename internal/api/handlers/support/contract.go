package support

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/service/support/models"
)

type SupportService interface {
	Create(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error)
	List(ctx context.Context, status *string) (*models.TicketListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
