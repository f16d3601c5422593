package models

import (
	"errors"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

var (
	// ErrInvalidType возвращается при некорректном типе автобуса
	ErrInvalidType = errors.New("invalid bus type")

	// ErrInvalidStatus возвращается при некорректном статусе автобуса
	ErrInvalidStatus = errors.New("invalid bus status")
)

// Request модели

// CreateBusRequest запрос на создание автобуса
type CreateBusRequest struct {
	Number   string `json:"number"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
	Status   string `json:"status,omitempty"` // по умолчанию active
	RouteID  *int64 `json:"routeId,omitempty"`
}

// UpdateBusRequest частичное обновление автобуса
type UpdateBusRequest struct {
	Model    *string `json:"model,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Type     *string `json:"type,omitempty"`
	Status   *string `json:"status,omitempty"`
	RouteID  *int64  `json:"routeId,omitempty"`
}

// IsEmpty returns true if the update does not change any field
func (r *UpdateBusRequest) IsEmpty() bool {
	return r.Model == nil && r.Capacity == nil && r.Type == nil &&
		r.Status == nil && r.RouteID == nil
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBusRequest) ToDomainUpdate() (domain.BusUpdate, error) {
	update := domain.BusUpdate{
		Model:    r.Model,
		Capacity: r.Capacity,
		RouteID:  r.RouteID,
	}

	if r.Type != nil {
		busType := domain.BusType(*r.Type)
		if !busType.IsValid() {
			return update, ErrInvalidType
		}
		update.Type = &busType
	}
	if r.Status != nil {
		status := domain.BusStatus(*r.Status)
		if !status.IsValid() {
			return update, ErrInvalidStatus
		}
		update.Status = &status
	}

	return update, nil
}

// Response модели

// BusResponse ответ с данными автобуса
type BusResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Model     string    `json:"model"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	RouteID   *int64    `json:"routeId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BusListResponse ответ со списком автобусов
type BusListResponse struct {
	Buses []BusResponse `json:"buses"`
}

// FromDomainBus конвертирует domain модель в DTO
func FromDomainBus(b *domain.Bus) *BusResponse {
	if b == nil {
		return nil
	}

	return &BusResponse{
		ID:        b.ID,
		Number:    b.Number,
		Model:     b.Model,
		Capacity:  b.Capacity,
		Type:      string(b.Type),
		Status:    string(b.Status),
		RouteID:   b.RouteID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBusList конвертирует список domain моделей в DTO
func FromDomainBusList(buses []*domain.Bus) *BusListResponse {
	resp := &BusListResponse{
		Buses: make([]BusResponse, 0, len(buses)),
	}

	for _, bus := range buses {
		if busResp := FromDomainBus(bus); busResp != nil {
			resp.Buses = append(resp.Buses, *busResp)
		}
	}

	return resp
}
