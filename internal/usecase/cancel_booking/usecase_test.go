package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	bookingRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/booking"
)

// --- Mocks ---

type mockRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Booking, error)
	cancelFn  func(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepo) CancelIfNotCancelled(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error) {
	return m.cancelFn(ctx, id, reason, cancelledAt, quote)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(repo *mockRepo) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		timeProvider: fixedTime{testNow},
		logger:       noopLogger{},
	}
}

func activeBooking(hoursAhead time.Duration) *domain.Booking {
	return &domain.Booking{
		ID:            1,
		BookingCode:   "BK-test",
		RouteID:       3,
		Seats:         []string{"A1", "A2"},
		TotalAmount:   2000,
		PaymentStatus: domain.StatusPaid,
		TravelDate:    testNow.Add(hoursAhead),
	}
}

// --- Tests ---

func TestCancel_30HoursAhead_Refunds50Percent(t *testing.T) {
	var gotQuote domain.RefundQuote
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return activeBooking(30 * time.Hour), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error) {
			gotQuote = quote
			return true, nil
		},
	}

	resp, err := newUseCase(repo).Execute(context.Background(), 1, &Request{Reason: "plans changed"})
	require.NoError(t, err)

	assert.Equal(t, 50, resp.RefundPercentage)
	assert.Equal(t, 1000.0, resp.RefundAmount)
	assert.Equal(t, "Pending", resp.RefundStatus)
	assert.Equal(t, "Cancelled", resp.PaymentStatus)
	assert.Equal(t, testNow, resp.CancelledAt)
	assert.Equal(t, gotQuote.Amount, resp.RefundAmount)
}

func TestCancel_5HoursAhead_NoRefund(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return activeBooking(5 * time.Hour), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error) {
			return true, nil
		},
	}

	resp, err := newUseCase(repo).Execute(context.Background(), 1, &Request{})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.RefundPercentage)
	assert.Equal(t, 0.0, resp.RefundAmount)
	assert.Equal(t, "Not Applicable", resp.RefundStatus)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := activeBooking(30 * time.Hour)
	booking.PaymentStatus = domain.StatusCancelled

	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return booking, nil
		},
	}

	_, err := newUseCase(repo).Execute(context.Background(), 1, &Request{})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_PastTrip(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return activeBooking(-2 * time.Hour), nil
		},
	}

	_, err := newUseCase(repo).Execute(context.Background(), 1, &Request{})
	assert.ErrorIs(t, err, ErrPastBooking)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	_, err := newUseCase(repo).Execute(context.Background(), 99, &Request{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ConcurrentCancellationLosesRace(t *testing.T) {
	// Проверка прошла по прочитанному документу, но UPDATE не затронул строк:
	// бронирование отменили между чтением и записью
	repo := &mockRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return activeBooking(30 * time.Hour), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error) {
			return false, nil
		},
	}

	_, err := newUseCase(repo).Execute(context.Background(), 1, &Request{})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}
