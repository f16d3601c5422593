package create_booking

import (
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
//
// Дата поездки намеренно не проверяется на принадлежность будущему:
// оформление задним числом допускается (например, ручной ввод оператором),
// запрет действует только в сценарии отмены
func validateRequest(req *Request) error {
	if req.RouteID <= 0 {
		return fmt.Errorf("%w: routeID must be positive", ErrInvalidInput)
	}

	if req.PassengerName == "" {
		return fmt.Errorf("%w: passenger name is required", ErrInvalidInput)
	}
	if len(req.PassengerName) > domain.MaxPassengerNameLength {
		return fmt.Errorf("%w: passenger name is too long", ErrInvalidInput)
	}
	if req.PassengerEmail == "" {
		return fmt.Errorf("%w: passenger email is required", ErrInvalidInput)
	}
	if req.PassengerPhone == "" {
		return fmt.Errorf("%w: passenger phone is required", ErrInvalidInput)
	}

	if len(req.Seats) < domain.MinSeatsPerBooking {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidInput)
	}
	if len(req.Seats) > domain.MaxSeatsPerBooking {
		return fmt.Errorf("%w: at most %d seats per booking", ErrInvalidInput, domain.MaxSeatsPerBooking)
	}

	seen := make(map[string]struct{}, len(req.Seats))
	for _, seat := range req.Seats {
		if seat == "" || len(seat) > domain.MaxSeatNameLength {
			return fmt.Errorf("%w: invalid seat name %q", ErrInvalidInput, seat)
		}
		if _, ok := seen[seat]; ok {
			return fmt.Errorf("%w: duplicate seat %q", ErrInvalidInput, seat)
		}
		seen[seat] = struct{}{}
	}

	if req.TravelDate.IsZero() {
		return fmt.Errorf("%w: travel date is required", ErrInvalidInput)
	}

	if req.PaymentStatus != nil {
		if _, err := domain.ParsePaymentStatus(*req.PaymentStatus); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if domain.PaymentStatus(*req.PaymentStatus) == domain.StatusCancelled {
			return fmt.Errorf("%w: booking cannot be created as cancelled", ErrInvalidInput)
		}
	}

	return nil
}
