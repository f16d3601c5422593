package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
)

// --- Mocks ---

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getTakenSeatsFn func(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) GetTakenSeats(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error) {
	return m.getTakenSeatsFn(ctx, routeID, travelDate)
}

type mockRouteRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Route, error)
}

func (m *mockRouteRepo) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return m.getByIDFn(ctx, id)
}

// inlineTxManager выполняет fn без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticCode struct{}

func (staticCode) Generate() string { return "BK-fixed" }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newUseCase(bookings *mockBookingRepo, routes *mockRouteRepo) *UseCase {
	return &UseCase{
		bookingRepo:   bookings,
		routeRepo:     routes,
		txManager:     inlineTxManager{},
		codeGenerator: staticCode{},
		logger:        noopLogger{},
	}
}

func validRequest() *Request {
	return &Request{
		RouteID:        1,
		PassengerName:  "Ivan Petrov",
		PassengerEmail: "ivan@example.com",
		PassengerPhone: "+79990001122",
		Seats:          []string{"A1", "A2"},
		TravelDate:     time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func moscowTver() *domain.Route {
	return &domain.Route{
		ID:              1,
		RouteNumber:     101,
		From:            "Moscow",
		To:              "Tver",
		DistanceKM:      180,
		DurationMinutes: 150,
		Price:           1000,
	}
}

// --- Tests ---

func TestCreate_TotalIsSeatsTimesRoutePrice(t *testing.T) {
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 7
			booking.CreatedAt = time.Now()
			return booking, nil
		},
		getTakenSeatsFn: func(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error) {
			return nil, nil
		},
	}
	routes := &mockRouteRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			return moscowTver(), nil
		},
	}

	resp, err := newUseCase(bookings, routes).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Цена за место 1000, два места - итого 2000
	assert.Equal(t, 2000.0, resp.TotalAmount)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "BK-fixed", resp.BookingCode)
	assert.Equal(t, "Pending", resp.PaymentStatus)
	assert.Equal(t, []string{"A1", "A2"}, resp.Seats)
}

func TestCreate_EmptySeats(t *testing.T) {
	req := validRequest()
	req.Seats = nil

	_, err := newUseCase(nil, nil).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateSeats(t *testing.T) {
	req := validRequest()
	req.Seats = []string{"A1", "A1"}

	_, err := newUseCase(nil, nil).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_MissingPassengerContact(t *testing.T) {
	for _, mutate := range []func(*Request){
		func(r *Request) { r.PassengerName = "" },
		func(r *Request) { r.PassengerEmail = "" },
		func(r *Request) { r.PassengerPhone = "" },
	} {
		req := validRequest()
		mutate(req)

		_, err := newUseCase(nil, nil).Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCreate_InvalidInitialStatus(t *testing.T) {
	req := validRequest()
	status := "Refunded"
	req.PaymentStatus = &status

	_, err := newUseCase(nil, nil).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Создать сразу отмененное бронирование тоже нельзя
	cancelled := "Cancelled"
	req.PaymentStatus = &cancelled

	_, err = newUseCase(nil, nil).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_RouteNotFound(t *testing.T) {
	routes := &mockRouteRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			return nil, routeRepo.ErrRouteNotFound
		},
	}

	_, err := newUseCase(nil, routes).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestCreate_SeatTaken(t *testing.T) {
	bookings := &mockBookingRepo{
		getTakenSeatsFn: func(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error) {
			return []string{"A2", "B1"}, nil
		},
	}
	routes := &mockRouteRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			return moscowTver(), nil
		},
	}

	_, err := newUseCase(bookings, routes).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSeatTaken)
}
