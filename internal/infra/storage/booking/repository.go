package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	"github.com/avdeyev/BusPark-BookingService/pkg/dbmetrics"
	"github.com/avdeyev/BusPark-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"booking_code",
	"route_id",
	"user_id",
	"passenger_name",
	"passenger_email",
	"passenger_phone",
	"seats",
	"total_amount",
	"payment_status",
	"travel_date",
	"cancellation_reason",
	"cancelled_at",
	"refund_amount",
	"refund_percentage",
	"refund_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует ее -
// сценарий создания с проверкой занятости мест выполняется в одной транзакции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_code",
			"route_id",
			"user_id",
			"passenger_name",
			"passenger_email",
			"passenger_phone",
			"seats",
			"total_amount",
			"payment_status",
			"travel_date",
			"refund_status",
		).
		Values(
			booking.BookingCode,
			booking.RouteID,
			booking.Passenger.UserID,
			booking.Passenger.Name,
			booking.Passenger.Email,
			booking.Passenger.Phone,
			pq.Array(booking.Seats),
			booking.TotalAmount,
			booking.PaymentStatus,
			booking.TravelDate,
			booking.RefundStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateCode, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCode получает бронирование по публичному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_code": code}, "GetByCode")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Порядок сортировки передается явно: по дате поездки (ASC)
// или по дате оформления (DESC), опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, sort domain.UserBookingsSort, status *domain.PaymentStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID})

	switch sort {
	case domain.SortByTravelDate:
		selectBuilder = selectBuilder.OrderBy("travel_date ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter получает бронирования с административной фильтрацией
// Поддерживает фильтры по маршруту, периоду дат поездки и статусу;
// отмененные бронирования исключаются, если не запрошены явно
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.RouteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"route_id": *filter.RouteID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"travel_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"travel_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"payment_status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("travel_date DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetTakenSeats возвращает занятые места на маршруте в указанный день
// (места отмененных бронирований считаются свободными)
// Внутри транзакции добавляет FOR UPDATE - используется сценарием создания
// бронирования для защиты от одновременного выбора одного места
func (r *Repository) GetTakenSeats(ctx context.Context, routeID int64, travelDate time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("seats").
		From("bookings").
		Where(squirrel.Eq{"route_id": routeID}).
		Where(squirrel.Expr("travel_date::date = ?::date", travelDate)).
		Where(squirrel.NotEq{"payment_status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenSeats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenSeats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taken := make([]string, 0)
	for rows.Next() {
		var seats []string
		if err := rows.Scan(pq.Array(&seats)); err != nil {
			return nil, fmt.Errorf("%w: GetTakenSeats - scan seats: %v", ErrScanRow, err)
		}
		taken = append(taken, seats...)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTakenSeats - rows error: %v", ErrScanRow, err)
	}

	return taken, nil
}

// UpdateFields частично обновляет бронирование, nil-поля не трогаются
func (r *Repository) UpdateFields(ctx context.Context, id int64, update domain.BookingUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.PassengerName != nil {
		updateBuilder = updateBuilder.Set("passenger_name", *update.PassengerName)
	}
	if update.PassengerEmail != nil {
		updateBuilder = updateBuilder.Set("passenger_email", *update.PassengerEmail)
	}
	if update.PassengerPhone != nil {
		updateBuilder = updateBuilder.Set("passenger_phone", *update.PassengerPhone)
	}
	if update.TravelDate != nil {
		updateBuilder = updateBuilder.Set("travel_date", *update.TravelDate)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateFields")
}

// UpdateStatus обновляет статус оплаты бронирования
// Допустимость перехода проверяется на уровне сервиса
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// CancelIfNotCancelled атомарно отменяет бронирование с записью полей возврата
//
// Условие payment_status <> 'Cancelled' входит в сам UPDATE, поэтому два
// одновременных запроса на отмену не обработают возврат дважды: второй
// получит rowsAffected = 0. Возвращает true, если отмена применена.
func (r *Repository) CancelIfNotCancelled(ctx context.Context, id int64, reason string, cancelledAt time.Time, quote domain.RefundQuote) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("refund_amount", quote.Amount).
		Set("refund_percentage", quote.Percentage).
		Set("refund_status", quote.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"payment_status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Delete удаляет бронирование (физическое удаление, без архивации)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var seats []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.RouteID,
		&booking.Passenger.UserID,
		&booking.Passenger.Name,
		&booking.Passenger.Email,
		&booking.Passenger.Phone,
		pq.Array(&seats),
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.TravelDate,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.RefundAmount,
		&booking.RefundPercentage,
		&booking.RefundStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Seats = seats
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
