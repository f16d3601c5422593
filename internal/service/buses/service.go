package buses

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	busRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/bus"
	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
	"github.com/avdeyev/BusPark-BookingService/internal/service/buses/models"
)

// Service сервис для работы с автопарком
type Service struct {
	busRepo   BusRepository
	routeRepo RouteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса автопарка
func NewService(busRepo BusRepository, routeRepo RouteRepository, logger Logger) *Service {
	return &Service{
		busRepo:   busRepo,
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Create создает автобус
func (s *Service) Create(ctx context.Context, req *models.CreateBusRequest) (*models.BusResponse, error) {
	s.logger.Info("Create: creating bus number=%s", req.Number)

	bus, err := s.buildBus(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if bus.RouteID != nil {
		if err := s.checkRoute(ctx, *bus.RouteID); err != nil {
			return nil, err
		}
	}

	created, err := s.busRepo.Create(ctx, bus)
	if err != nil {
		if errors.Is(err, busRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: bus number=%s already exists", req.Number)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: bus id=%d created", created.ID)
	return models.FromDomainBus(created), nil
}

// GetByID получает автобус по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BusResponse, error) {
	s.logger.Info("GetByID: fetching bus id=%d", id)

	bus, err := s.busRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, busRepo.ErrBusNotFound) {
			s.logger.Warn("GetByID: bus id=%d not found", id)
			return nil, ErrBusNotFound
		}
		s.logger.Error("GetByID: repository error for bus id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBus(bus), nil
}

// List получает автобусы, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, statusFilter *string) (*models.BusListResponse, error) {
	s.logger.Info("List: fetching buses, status=%v", statusFilter)

	var status *domain.BusStatus
	if statusFilter != nil {
		parsed := domain.BusStatus(*statusFilter)
		if !parsed.IsValid() {
			s.logger.Warn("List: invalid status=%s", *statusFilter)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	buses, err := s.busRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d buses", len(buses))
	return models.FromDomainBusList(buses), nil
}

// Update частично обновляет автобус
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBusRequest) (*models.BusResponse, error) {
	s.logger.Info("Update: updating bus id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for bus id=%d", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: validation failed for bus id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if update.Capacity != nil && *update.Capacity <= 0 {
		s.logger.Warn("Update: non-positive capacity for bus id=%d", id)
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if update.RouteID != nil {
		if err := s.checkRoute(ctx, *update.RouteID); err != nil {
			return nil, err
		}
	}

	if err := s.busRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, busRepo.ErrBusNotFound) {
			s.logger.Warn("Update: bus id=%d not found", id)
			return nil, ErrBusNotFound
		}
		s.logger.Error("Update: repository error for bus id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет автобус
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting bus id=%d", id)

	if err := s.busRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, busRepo.ErrBusNotFound) {
			s.logger.Warn("Delete: bus id=%d not found", id)
			return ErrBusNotFound
		}
		s.logger.Error("Delete: repository error for bus id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: bus id=%d deleted", id)
	return nil
}

// Вспомогательные методы

func (s *Service) buildBus(req *models.CreateBusRequest) (*domain.Bus, error) {
	if req.Number == "" || req.Model == "" {
		return nil, fmt.Errorf("%w: number and model are required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	busType := domain.BusType(req.Type)
	if !busType.IsValid() {
		return nil, fmt.Errorf("%w: invalid bus type %q", ErrInvalidInput, req.Type)
	}

	status := domain.BusStatusActive
	if req.Status != "" {
		status = domain.BusStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid bus status %q", ErrInvalidInput, req.Status)
		}
	}

	return &domain.Bus{
		Number:   req.Number,
		Model:    req.Model,
		Capacity: req.Capacity,
		Type:     busType,
		Status:   status,
		RouteID:  req.RouteID,
	}, nil
}

// checkRoute проверяет существование назначаемого маршрута
func (s *Service) checkRoute(ctx context.Context, routeID int64) error {
	if _, err := s.routeRepo.GetByID(ctx, routeID); err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("checkRoute: route id=%d not found", routeID)
			return ErrRouteNotFound
		}
		s.logger.Error("checkRoute: failed to get route id=%d: %v", routeID, err)
		return fmt.Errorf("%w: checkRoute - failed to get route: %v", ErrInternal, err)
	}
	return nil
}
