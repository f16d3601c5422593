package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	supportRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/support"
	"github.com/avdeyev/BusPark-BookingService/internal/service/support/models"
)

// Service сервис обращений в поддержку
type Service struct {
	ticketRepo TicketRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса поддержки
func NewService(ticketRepo TicketRepository, logger Logger) *Service {
	return &Service{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Create создает обращение в поддержку
// Доступно без аутентификации, статус всегда open
func (s *Service) Create(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error) {
	s.logger.Info("Create: creating support ticket from email=%s", req.Email)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		s.logger.Warn("Create: missing required fields from email=%s", req.Email)
		return nil, fmt.Errorf("%w: name, email, subject and message are required", ErrInvalidInput)
	}

	ticket, err := s.ticketRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: ticket id=%d created", ticket.ID)
	return models.FromDomainTicket(ticket), nil
}

// List получает обращения, опционально фильтруя по статусу
// Доступно только администраторам и поддержке
func (s *Service) List(ctx context.Context, statusFilter *string) (*models.TicketListResponse, error) {
	s.logger.Info("List: fetching tickets, status=%v", statusFilter)

	var status *domain.TicketStatus
	if statusFilter != nil {
		parsed := domain.TicketStatus(*statusFilter)
		if !parsed.IsValid() {
			s.logger.Warn("List: invalid status=%s", *statusFilter)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	tickets, err := s.ticketRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d tickets", len(tickets))
	return models.FromDomainTicketList(tickets), nil
}

// UpdateStatus переводит обращение в новый статус
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating ticket id=%d to status=%s", id, req.Status)

	status := domain.TicketStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for ticket id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	if err := s.ticketRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, supportRepo.ErrTicketNotFound) {
			s.logger.Warn("UpdateStatus: ticket id=%d not found", id)
			return ErrTicketNotFound
		}
		s.logger.Error("UpdateStatus: repository error for ticket id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: ticket id=%d updated to status=%s", id, status)
	return nil
}
