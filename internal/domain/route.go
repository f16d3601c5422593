package domain

import "time"

// Route represents a scheduled origin-destination pair served by the fleet
type Route struct {
	ID              int64
	RouteNumber     int64 // человекочитаемый номер маршрута, автоинкремент
	From            string
	To              string
	DistanceKM      float64
	DurationMinutes int
	Price           float64 // цена за одно место
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RouteUpdate частичное обновление маршрута, nil-поля не изменяются
type RouteUpdate struct {
	From            *string
	To              *string
	DistanceKM      *float64
	DurationMinutes *int
	Price           *float64
}
