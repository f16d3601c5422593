package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_code", "route_id", "user_id",
		"passenger_name", "passenger_email", "passenger_phone",
		"seats", "total_amount", "payment_status", "travel_date",
		"cancellation_reason", "cancelled_at",
		"refund_amount", "refund_percentage", "refund_status",
		"created_at", "updated_at",
	})
}

func TestCreate_ReturnsServerAssignedFields(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	booking := &domain.Booking{
		BookingCode:   "BK-x7f3",
		RouteID:       1,
		Passenger:     domain.Passenger{Name: "Ivan", Email: "ivan@example.com", Phone: "+79990001122"},
		Seats:         []string{"A1", "A2"},
		TotalAmount:   2000,
		PaymentStatus: domain.StatusPending,
		TravelDate:    now.Add(72 * time.Hour),
		RefundStatus:  domain.RefundNotApplicable,
	}

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .* FROM bookings").
		WithArgs(int64(99)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_ScansAllFields(t *testing.T) {
	repo, mock := newMock(t)

	travel := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	created := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM bookings").
		WithArgs(int64(5)).
		WillReturnRows(bookingRows().AddRow(
			int64(5), "BK-abc1", int64(2), nil,
			"Maria", "maria@example.com", "+79995556677",
			"{B3}", 1500.0, "Paid", travel,
			nil, nil,
			nil, nil, "Not Applicable",
			created, created,
		))

	booking, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "BK-abc1", booking.BookingCode)
	assert.Equal(t, []string{"B3"}, booking.Seats)
	assert.Equal(t, 1500.0, booking.TotalAmount)
	assert.Equal(t, domain.StatusPaid, booking.PaymentStatus)
	assert.Equal(t, travel, booking.TravelDate)
	assert.Equal(t, created, booking.CreatedAt)
	assert.Nil(t, booking.Passenger.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_SortOrders(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .* FROM bookings .*ORDER BY travel_date ASC").
		WithArgs(int64(10)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByUserID(context.Background(), 10, domain.SortByTravelDate, nil)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .* FROM bookings .*ORDER BY created_at DESC").
		WithArgs(int64(10)).
		WillReturnRows(bookingRows())

	_, err = repo.GetByUserID(context.Background(), 10, domain.SortByBookingDate, nil)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelIfNotCancelled_AppliesOnce(t *testing.T) {
	repo, mock := newMock(t)

	quote := domain.RefundQuote{Percentage: 50, Amount: 1000, Status: domain.RefundPending}
	cancelledAt := time.Now()

	// Первая отмена проходит
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.CancelIfNotCancelled(context.Background(), 5, "plans changed", cancelledAt, quote)
	require.NoError(t, err)
	assert.True(t, applied)

	// Повторная отмена не затрагивает строк - условие payment_status <> 'Cancelled' не выполняется
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err = repo.CancelIfNotCancelled(context.Background(), 5, "plans changed", cancelledAt, quote)
	require.NoError(t, err)
	assert.False(t, applied)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
