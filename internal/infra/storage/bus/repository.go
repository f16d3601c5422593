package bus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	"github.com/avdeyev/BusPark-BookingService/pkg/dbmetrics"
	"github.com/avdeyev/BusPark-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var busColumns = []string{
	"id",
	"number",
	"model",
	"capacity",
	"type",
	"status",
	"route_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с автобусами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория автобусов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый автобус
func (r *Repository) Create(ctx context.Context, bus *domain.Bus) (*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buses").
		Columns("number", "model", "capacity", "type", "status", "route_id").
		Values(bus.Number, bus.Model, bus.Capacity, bus.Type, bus.Status, bus.RouteID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bus.ID, &createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateNumber, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bus.CreatedAt = createdAt.Time
	bus.UpdatedAt = updatedAt.Time

	return bus, nil
}

// GetByID получает автобус по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(busColumns...).
		From("buses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	bus, err := scanBus(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bus: %v", ErrScanRow, err)
	}

	return bus, nil
}

// List получает все автобусы, опционально фильтруя по статусу
func (r *Repository) List(ctx context.Context, status *domain.BusStatus) ([]*domain.Bus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(busColumns...).
		From("buses").
		OrderBy("number ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	buses := make([]*domain.Bus, 0)
	for rows.Next() {
		bus, err := scanBus(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		buses = append(buses, bus)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return buses, nil
}

// Update частично обновляет автобус, nil-поля не трогаются
func (r *Repository) Update(ctx context.Context, id int64, update domain.BusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("buses").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Model != nil {
		updateBuilder = updateBuilder.Set("model", *update.Model)
	}
	if update.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *update.Capacity)
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}
	if update.RouteID != nil {
		updateBuilder = updateBuilder.Set("route_id", *update.RouteID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusNotFound
	}

	return nil
}

// Delete удаляет автобус
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("buses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBusNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBus(row rowScanner) (*domain.Bus, error) {
	var bus domain.Bus
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&bus.ID,
		&bus.Number,
		&bus.Model,
		&bus.Capacity,
		&bus.Type,
		&bus.Status,
		&bus.RouteID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	bus.CreatedAt = createdAt.Time
	bus.UpdatedAt = updatedAt.Time

	return &bus, nil
}
