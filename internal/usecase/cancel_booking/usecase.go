package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	bookingRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования с расчетом возврата
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет бронирование и рассчитывает возврат по тирам
//
// Условие "еще не отменено" проверяется дважды: сначала на прочитанном
// документе (ради точной ошибки), затем атомарно в самом UPDATE.
// Поэтому два одновременных запроса на отмену не обработают возврат
// дважды - проигравший получит ErrAlreadyCancelled.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		uc.logger.Warn("CancelBooking: reason too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	now := uc.timeProvider.Now()

	// Прошедшую поездку отменить нельзя
	if booking.TravelDate.Before(now) {
		uc.logger.Warn("CancelBooking: booking id=%d trip date %s is in the past",
			bookingID, booking.TravelDate.Format(domain.DateTimeFormat))
		return nil, ErrPastBooking
	}

	quote := domain.CalculateRefund(now, booking.TravelDate, booking.TotalAmount)

	applied, err := uc.bookingRepo.CancelIfNotCancelled(ctx, bookingID, req.Reason, now, quote)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel: %v", ErrInternal, err)
	}
	if !applied {
		// Конкурирующий запрос успел отменить бронирование между чтением и записью
		uc.logger.Warn("CancelBooking: booking id=%d was cancelled concurrently", bookingID)
		return nil, ErrAlreadyCancelled
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, refund %d%% (%.2f), status=%s",
		bookingID, quote.Percentage, quote.Amount, quote.Status)

	return &Response{
		ID:               booking.ID,
		BookingCode:      booking.BookingCode,
		PaymentStatus:    string(domain.StatusCancelled),
		RefundPercentage: quote.Percentage,
		RefundAmount:     quote.Amount,
		RefundStatus:     string(quote.Status),
		CancelledAt:      now,
	}, nil
}
