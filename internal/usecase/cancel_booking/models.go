package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	Reason string // Причина отмены (опционально)
}

// Response модель ответа с результатами отмены и расчетом возврата
type Response struct {
	ID               int64
	BookingCode      string
	PaymentStatus    string
	RefundPercentage int
	RefundAmount     float64
	RefundStatus     string
	CancelledAt      time.Time
}
