package create_booking

import (
	"time"

	createBooking "github.com/avdeyev/BusPark-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID         *int64   `json:"userId,omitempty"` // nil для гостевых бронирований
	RouteID        int64    `json:"routeId"`
	PassengerName  string   `json:"passengerName"`
	PassengerEmail string   `json:"passengerEmail"`
	PassengerPhone string   `json:"passengerPhone"`
	Seats          []string `json:"seats"`
	TravelDate     string   `json:"travelDate"` // RFC 3339
	PaymentStatus  *string  `json:"paymentStatus,omitempty"`
}

// BookingResponse HTTP response model
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
	TravelDate    string   `json:"travelDate"`
	BookingDate   string   `json:"bookingDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	travelDate, err := time.Parse(time.RFC3339, r.TravelDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         r.UserID,
		RouteID:        r.RouteID,
		PassengerName:  r.PassengerName,
		PassengerEmail: r.PassengerEmail,
		PassengerPhone: r.PassengerPhone,
		Seats:          r.Seats,
		TravelDate:     travelDate,
		PaymentStatus:  r.PaymentStatus,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingCode:   resp.BookingCode,
		RouteID:       resp.RouteID,
		UserID:        resp.Passenger.UserID,
		PassengerName: resp.Passenger.Name,
		Email:         resp.Passenger.Email,
		Phone:         resp.Passenger.Phone,
		Seats:         resp.Seats,
		TotalAmount:   resp.TotalAmount,
		PaymentStatus: resp.PaymentStatus,
		TravelDate:    resp.TravelDate.Format(time.RFC3339),
		BookingDate:   resp.BookingDate.Format(time.RFC3339),
	}
}
