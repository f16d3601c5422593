package buses

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/service/buses/models"
)

type BusService interface {
	Create(ctx context.Context, req *models.CreateBusRequest) (*models.BusResponse, error)
	GetByID(ctx context.Context, id int64) (*models.BusResponse, error)
	List(ctx context.Context, status *string) (*models.BusListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateBusRequest) (*models.BusResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
