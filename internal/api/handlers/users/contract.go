package users

import (
	"context"

	"github.com/avdeyev/BusPark-BookingService/internal/service/users/models"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPairResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenPairResponse, error)
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	List(ctx context.Context, role *string) (*models.UserListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
