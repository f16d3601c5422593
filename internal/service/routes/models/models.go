package models

import (
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// Request модели

// CreateRouteRequest запрос на создание маршрута
type CreateRouteRequest struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKM      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToDomain конвертирует request в domain модель
// Номер маршрута назначается базой при вставке
func (r *CreateRouteRequest) ToDomain() *domain.Route {
	return &domain.Route{
		From:            r.From,
		To:              r.To,
		DistanceKM:      r.DistanceKM,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// UpdateRouteRequest частичное обновление маршрута
type UpdateRouteRequest struct {
	From            *string  `json:"from,omitempty"`
	To              *string  `json:"to,omitempty"`
	DistanceKM      *float64 `json:"distanceKm,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateRouteRequest) ToDomainUpdate() domain.RouteUpdate {
	return domain.RouteUpdate{
		From:            r.From,
		To:              r.To,
		DistanceKM:      r.DistanceKM,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// IsEmpty returns true if the update does not change any field
func (r *UpdateRouteRequest) IsEmpty() bool {
	return r.From == nil && r.To == nil && r.DistanceKM == nil &&
		r.DurationMinutes == nil && r.Price == nil
}

// Response модели

// RouteResponse ответ с данными маршрута
type RouteResponse struct {
	ID              int64     `json:"id"`
	RouteNumber     int64     `json:"routeNumber"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	DistanceKM      float64   `json:"distanceKm"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RouteListResponse ответ со списком маршрутов
type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// FromDomainRoute конвертирует domain модель в DTO
func FromDomainRoute(r *domain.Route) *RouteResponse {
	if r == nil {
		return nil
	}

	return &RouteResponse{
		ID:              r.ID,
		RouteNumber:     r.RouteNumber,
		From:            r.From,
		To:              r.To,
		DistanceKM:      r.DistanceKM,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainRouteList конвертирует список domain моделей в DTO
func FromDomainRouteList(routes []*domain.Route) *RouteListResponse {
	resp := &RouteListResponse{
		Routes: make([]RouteResponse, 0, len(routes)),
	}

	for _, route := range routes {
		if routeResp := FromDomainRoute(route); routeResp != nil {
			resp.Routes = append(resp.Routes, *routeResp)
		}
	}

	return resp
}
