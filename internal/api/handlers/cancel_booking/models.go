package cancel_booking

import (
	"time"

	cancelBooking "github.com/avdeyev/BusPark-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model с расчетом возврата
type CancelBookingResponse struct {
	ID               int64   `json:"id"`
	BookingCode      string  `json:"bookingCode"`
	PaymentStatus    string  `json:"paymentStatus"`
	RefundPercentage int     `json:"refundPercentage"`
	RefundAmount     float64 `json:"refundAmount"`
	RefundStatus     string  `json:"refundStatus"`
	CancelledAt      string  `json:"cancelledAt"` // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest() *cancelBooking.Request {
	return &cancelBooking.Request{
		Reason: r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:               resp.ID,
		BookingCode:      resp.BookingCode,
		PaymentStatus:    resp.PaymentStatus,
		RefundPercentage: resp.RefundPercentage,
		RefundAmount:     resp.RefundAmount,
		RefundStatus:     resp.RefundStatus,
		CancelledAt:      resp.CancelledAt.Format(time.RFC3339),
	}
}
