package models

import (
	"errors"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

var (
	// ErrInvalidRole возвращается при некорректной роли
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidDriverProfile возвращается при некорректном профиле водителя
	ErrInvalidDriverProfile = errors.New("invalid driver profile")
)

// Request модели

// DriverProfileRequest профиль водителя в запросах
type DriverProfileRequest struct {
	EmploymentStatus string `json:"employmentStatus"`
	ShiftPreference  string `json:"shiftPreference"`
	BloodType        string `json:"bloodType"`
}

// ToDomain конвертирует профиль водителя в domain модель с валидацией
func (r *DriverProfileRequest) ToDomain() (*domain.DriverProfile, error) {
	profile := &domain.DriverProfile{
		EmploymentStatus: domain.EmploymentStatus(r.EmploymentStatus),
		ShiftPreference:  domain.ShiftPreference(r.ShiftPreference),
		BloodType:        domain.BloodType(r.BloodType),
	}
	if !profile.Validate() {
		return nil, ErrInvalidDriverProfile
	}
	return profile, nil
}

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Phone    string                `json:"phone"`
	Password string                `json:"password"`
	Role     string                `json:"role,omitempty"` // по умолчанию passenger
	Driver   *DriverProfileRequest `json:"driverProfile,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest запрос на обновление пары токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateUserRequest частичное обновление пользователя
type UpdateUserRequest struct {
	Name   *string               `json:"name,omitempty"`
	Phone  *string               `json:"phone,omitempty"`
	Driver *DriverProfileRequest `json:"driverProfile,omitempty"`
}

// IsEmpty returns true if the update does not change any field
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Driver == nil
}

// Response модели

// DriverProfileResponse профиль водителя в ответах
type DriverProfileResponse struct {
	EmploymentStatus string `json:"employmentStatus"`
	ShiftPreference  string `json:"shiftPreference"`
	BloodType        string `json:"bloodType"`
}

// UserResponse ответ с данными пользователя
// Хэш пароля наружу не отдается
type UserResponse struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Role      string                 `json:"role"`
	Driver    *DriverProfileResponse `json:"driverProfile,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// TokenPairResponse пара токенов после входа или обновления
type TokenPairResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.Driver != nil {
		resp.Driver = &DriverProfileResponse{
			EmploymentStatus: string(u.Driver.EmploymentStatus),
			ShiftPreference:  string(u.Driver.ShiftPreference),
			BloodType:        string(u.Driver.BloodType),
		}
	}

	return resp
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}
