package create_booking

import (
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         *int64    // ID пользователя (опционально, для гостевых бронирований nil)
	RouteID        int64     // ID маршрута
	PassengerName  string    // Имя пассажира
	PassengerEmail string    // Email пассажира
	PassengerPhone string    // Телефон пассажира
	Seats          []string  // Имена выбранных мест, минимум одно
	TravelDate     time.Time // Дата и время отправления
	PaymentStatus  *string   // Начальный статус оплаты (опционально, по умолчанию Pending)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BookingCode   string
	RouteID       int64
	Passenger     domain.Passenger
	Seats         []string
	TotalAmount   float64
	PaymentStatus string
	TravelDate    time.Time
	BookingDate   time.Time
}
