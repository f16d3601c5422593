package domain

import "time"

// Passenger контактные данные пассажира бронирования
// UserID заполняется для зарегистрированных пользователей
type Passenger struct {
	UserID *int64
	Name   string
	Email  string
	Phone  string
}

// Booking represents a seat reservation on a route for a travel date
type Booking struct {
	ID          int64
	BookingCode string // публичный код бронирования, выдается при создании
	RouteID     int64
	Passenger   Passenger
	Seats       []string
	TotalAmount float64

	PaymentStatus PaymentStatus
	TravelDate    time.Time

	// Поля возврата, заполняются только при отмене
	CancellationReason *string
	CancelledAt        *time.Time
	RefundAmount       *float64
	RefundPercentage   *int
	RefundStatus       RefundStatus

	CreatedAt time.Time // дата оформления, неизменяемая
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.PaymentStatus == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.PaymentStatus != StatusCancelled
}

// UserBookingsSort порядок сортировки списка бронирований пользователя
//
// Два явных порядка вместо одного по умолчанию: страница списка
// сортирует по дате поездки, дашборд - по дате оформления
type UserBookingsSort string

const (
	// SortByTravelDate по дате поездки, по возрастанию
	SortByTravelDate UserBookingsSort = "travel_date"

	// SortByBookingDate по дате оформления, по убыванию (сначала свежие)
	SortByBookingDate UserBookingsSort = "booking_date"
)

// IsValid returns true if the sort order is recognized
func (s UserBookingsSort) IsValid() bool {
	return s == SortByTravelDate || s == SortByBookingDate
}

// BookingsFilter фильтр для административной выборки бронирований
type BookingsFilter struct {
	RouteID          *int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *PaymentStatus
	IncludeCancelled bool
}

// BookingUpdate частичное обновление бронирования
// nil-поля не изменяются
type BookingUpdate struct {
	PassengerName  *string
	PassengerEmail *string
	PassengerPhone *string
	TravelDate     *time.Time
}

// IsEmpty returns true if the update does not change any field
func (u *BookingUpdate) IsEmpty() bool {
	return u.PassengerName == nil && u.PassengerEmail == nil &&
		u.PassengerPhone == nil && u.TravelDate == nil
}
