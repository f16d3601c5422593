package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	bookingRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/booking"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings/models"
	"github.com/avdeyev/BusPark-BookingService/pkg/ptr"
)

// --- Mocks ---

type mockBookingRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Booking, error)
	getByCodeFn    func(ctx context.Context, code string) (*domain.Booking, error)
	getByUserIDFn  func(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error)
	listFn         func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	updateFieldsFn func(ctx context.Context, id int64, update domain.BookingUpdate) error
	updateStatusFn func(ctx context.Context, id int64, status domain.PaymentStatus) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return m.getByCodeFn(ctx, code)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error) {
	return m.getByUserIDFn(ctx, userID, sort, status)
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn(ctx, filter)
}

func (m *mockBookingRepo) UpdateFields(ctx context.Context, id int64, update domain.BookingUpdate) error {
	return m.updateFieldsFn(ctx, id, update)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockRouteRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Route, error)
}

func (m *mockRouteRepo) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return m.getByIDFn(ctx, id)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(bookings *mockBookingRepo, routes *mockRouteRepo) *Service {
	return NewService(bookings, routes, noopLogger{})
}

func paidBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		BookingCode:   "BK-test",
		RouteID:       3,
		Passenger:     domain.Passenger{Name: "Ivan Petrov", Email: "ivan@example.com", Phone: "+79990001122"},
		Seats:         []string{"A1"},
		TotalAmount:   1000,
		PaymentStatus: domain.StatusPaid,
		TravelDate:    time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		RefundStatus:  domain.RefundNotApplicable,
	}
}

// --- Tests ---

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	var gotStatus domain.PaymentStatus
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return paidBooking(), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.PaymentStatus) error {
			gotStatus = status
			return nil
		},
	}

	resp, err := newService(repo, nil).UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Confirmed"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, gotStatus)
	assert.Equal(t, "Confirmed", resp.PaymentStatus)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	booking := paidBooking()
	booking.PaymentStatus = domain.StatusConfirmed

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return booking, nil
		},
	}

	_, err := newService(repo, nil).UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Paid"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_CancelledUnreachable(t *testing.T) {
	// Любой статус: запрос Cancelled через endpoint статуса отклоняется
	for _, from := range []domain.PaymentStatus{
		domain.StatusPending, domain.StatusPaid, domain.StatusFailed, domain.StatusConfirmed,
	} {
		booking := paidBooking()
		booking.PaymentStatus = from

		repo := &mockBookingRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return booking, nil
			},
		}

		_, err := newService(repo, nil).UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", from)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	_, err := newService(&mockBookingRepo{}, nil).UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Refunded"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	_, err := newService(repo, nil).UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "Paid"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_DefaultSortIsBookingDate(t *testing.T) {
	var gotSort domain.UserBookingsSort
	repo := &mockBookingRepo{
		getByUserIDFn: func(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error) {
			gotSort = sort
			return []*domain.Booking{paidBooking()}, nil
		},
	}

	resp, err := newService(repo, nil).GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, domain.SortByBookingDate, gotSort)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_ExplicitTravelDateSort(t *testing.T) {
	var gotSort domain.UserBookingsSort
	repo := &mockBookingRepo{
		getByUserIDFn: func(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error) {
			gotSort = sort
			return nil, nil
		},
	}

	_, err := newService(repo, nil).GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Sort:   ptr.Ptr("travel_date"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SortByTravelDate, gotSort)
}

func TestGetUserBookings_InvalidSort(t *testing.T) {
	_, err := newService(&mockBookingRepo{}, nil).GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Sort:   ptr.Ptr("price"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_CancelledBookingRejected(t *testing.T) {
	booking := paidBooking()
	booking.PaymentStatus = domain.StatusCancelled

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return booking, nil
		},
	}

	_, err := newService(repo, nil).Update(context.Background(), 1, &models.UpdateBookingRequest{
		PassengerName: ptr.Ptr("New Name"),
	})
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdate_EmptyUpdateRejected(t *testing.T) {
	_, err := newService(&mockBookingRepo{}, nil).Update(context.Background(), 1, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTicket_ComposesRouteAndBooking(t *testing.T) {
	bookings := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return paidBooking(), nil
		},
	}
	routes := &mockRouteRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			return &domain.Route{ID: 3, RouteNumber: 101, From: "Moscow", To: "Tver", Price: 1000}, nil
		},
	}

	ticket, err := newService(bookings, routes).GetTicket(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "BK-test", ticket.BookingCode)
	assert.Equal(t, "Moscow", ticket.From)
	assert.Equal(t, "Tver", ticket.To)
	assert.Equal(t, int64(101), ticket.RouteNumber)
	assert.Equal(t, 1000.0, ticket.TotalAmount)
}
