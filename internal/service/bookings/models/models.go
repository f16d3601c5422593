package models

import (
	"errors"
	"time"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе оплаты
	ErrInvalidStatus = errors.New("invalid payment status")

	// ErrInvalidSort возвращается при некорректном порядке сортировки
	ErrInvalidSort = errors.New("invalid sort order")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Sort   *string `json:"sort,omitempty"`   // travel_date | booking_date (по умолчанию booking_date)
	Status *string `json:"status,omitempty"` // Фильтр по статусу оплаты (опционально)
}

// SortOrder возвращает выбранный порядок сортировки
func (r *GetUserBookingsRequest) SortOrder() (domain.UserBookingsSort, error) {
	if r.Sort == nil {
		return domain.SortByBookingDate, nil
	}
	sort := domain.UserBookingsSort(*r.Sort)
	if !sort.IsValid() {
		return "", ErrInvalidSort
	}
	return sort, nil
}

// ListBookingsRequest запрос на административную выборку бронирований
type ListBookingsRequest struct {
	RouteID          *int64     `json:"routeId,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RouteID:          r.RouteID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainPaymentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса оплаты
type UpdateStatusRequest struct {
	Status string `json:"paymentStatus"`
}

// UpdateBookingRequest частичное обновление бронирования
type UpdateBookingRequest struct {
	PassengerName  *string    `json:"passengerName,omitempty"`
	PassengerEmail *string    `json:"passengerEmail,omitempty"`
	PassengerPhone *string    `json:"passengerPhone,omitempty"`
	TravelDate     *time.Time `json:"travelDate,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateBookingRequest) ToDomainUpdate() domain.BookingUpdate {
	return domain.BookingUpdate{
		PassengerName:  r.PassengerName,
		PassengerEmail: r.PassengerEmail,
		PassengerPhone: r.PassengerPhone,
		TravelDate:     r.TravelDate,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	BookingCode   string   `json:"bookingCode"`
	RouteID       int64    `json:"routeId"`
	UserID        *int64   `json:"userId,omitempty"`
	PassengerName string   `json:"passengerName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Seats         []string `json:"seats"`
	TotalAmount   float64  `json:"totalAmount"`
	PaymentStatus string   `json:"paymentStatus"`
	TravelDate    string   `json:"travelDate"`  // ISO 8601
	BookingDate   string   `json:"bookingDate"` // дата оформления, ISO 8601

	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"` // ISO 8601
	RefundAmount       *float64 `json:"refundAmount,omitempty"`
	RefundPercentage   *int     `json:"refundPercentage,omitempty"`
	RefundStatus       string   `json:"refundStatus"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// TicketResponse данные билета для печати
type TicketResponse struct {
	BookingCode   string
	PassengerName string
	From          string
	To            string
	RouteNumber   int64
	Seats         []string
	TravelDate    time.Time
	TotalAmount   float64
	PaymentStatus string
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		BookingCode:        b.BookingCode,
		RouteID:            b.RouteID,
		UserID:             b.Passenger.UserID,
		PassengerName:      b.Passenger.Name,
		Email:              b.Passenger.Email,
		Phone:              b.Passenger.Phone,
		Seats:              b.Seats,
		TotalAmount:        b.TotalAmount,
		PaymentStatus:      string(b.PaymentStatus),
		TravelDate:         b.TravelDate.Format(time.RFC3339),
		BookingDate:        b.CreatedAt.Format(time.RFC3339),
		CancellationReason: b.CancellationReason,
		RefundAmount:       b.RefundAmount,
		RefundPercentage:   b.RefundPercentage,
		RefundStatus:       string(b.RefundStatus),
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
