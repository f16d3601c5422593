package route

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

var routeColumns = []string{
	"id",
	"route_number",
	"origin",
	"destination",
	"distance_km",
	"duration_minutes",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с маршрутами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый маршрут
// route_number назначается базой (автоинкрементная последовательность)
func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("routes").
		Columns("origin", "destination", "distance_km", "duration_minutes", "price").
		Values(route.From, route.To, route.DistanceKM, route.DurationMinutes, route.Price).
		Suffix("RETURNING id, route_number, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&route.ID,
		&route.RouteNumber,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateRoute, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	route.CreatedAt = createdAt.Time
	route.UpdatedAt = updatedAt.Time

	return route, nil
}

// GetByID получает маршрут по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(routeColumns...).
		From("routes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	route, err := scanRoute(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan route: %v", ErrScanRow, err)
	}

	return route, nil
}

// List получает все маршруты, упорядоченные по номеру
func (r *Repository) List(ctx context.Context) ([]*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(routeColumns...).
		From("routes").
		OrderBy("route_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return routes, nil
}

// Update частично обновляет маршрут, nil-поля не трогаются
func (r *Repository) Update(ctx context.Context, id int64, update domain.RouteUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("routes").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.From != nil {
		updateBuilder = updateBuilder.Set("origin", *update.From)
	}
	if update.To != nil {
		updateBuilder = updateBuilder.Set("destination", *update.To)
	}
	if update.DistanceKM != nil {
		updateBuilder = updateBuilder.Set("distance_km", *update.DistanceKM)
	}
	if update.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *update.DurationMinutes)
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
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
		return ErrRouteNotFound
	}

	return nil
}

// Delete удаляет маршрут
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("routes").
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
		return ErrRouteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&route.ID,
		&route.RouteNumber,
		&route.From,
		&route.To,
		&route.DistanceKM,
		&route.DurationMinutes,
		&route.Price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	route.CreatedAt = createdAt.Time
	route.UpdatedAt = updatedAt.Time

	return &route, nil
}
