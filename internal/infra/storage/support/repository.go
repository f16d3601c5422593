package support

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	"github.com/avdeyev/BusPark-BookingService/pkg/dbmetrics"
	"github.com/avdeyev/BusPark-BookingService/pkg/psqlbuilder"
)

var ticketColumns = []string{
	"id",
	"name",
	"email",
	"subject",
	"message",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с обращениями в поддержку
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория обращений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое обращение
func (r *Repository) Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("support_tickets").
		Columns("name", "email", "subject", "message", "status").
		Values(ticket.Name, ticket.Email, ticket.Subject, ticket.Message, ticket.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ticket.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ticket.CreatedAt = createdAt.Time
	ticket.UpdatedAt = updatedAt.Time

	return ticket, nil
}

// List получает обращения, опционально фильтруя по статусу
func (r *Repository) List(ctx context.Context, status *domain.TicketStatus) ([]*domain.SupportTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ticketColumns...).
		From("support_tickets").
		OrderBy("created_at DESC")

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

	tickets := make([]*domain.SupportTicket, 0)
	for rows.Next() {
		var ticket domain.SupportTicket
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&ticket.ID,
			&ticket.Name,
			&ticket.Email,
			&ticket.Subject,
			&ticket.Message,
			&ticket.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		ticket.CreatedAt = createdAt.Time
		ticket.UpdatedAt = updatedAt.Time
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tickets, nil
}

// UpdateStatus обновляет статус обращения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("support_tickets").
		Set("status", status).
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

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}
