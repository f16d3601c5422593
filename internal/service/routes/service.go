package routes

import (
	"context"
	"errors"
	"fmt"

	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
	"github.com/avdeyev/BusPark-BookingService/internal/service/routes/models"
)

// Service сервис для работы с маршрутами
type Service struct {
	routeRepo RouteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(routeRepo RouteRepository, logger Logger) *Service {
	return &Service{
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Create создает маршрут
// Номер маршрута назначается автоматически
func (s *Service) Create(ctx context.Context, req *models.CreateRouteRequest) (*models.RouteResponse, error) {
	s.logger.Info("Create: creating route %s -> %s", req.From, req.To)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	route, err := s.routeRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, routeRepo.ErrDuplicateRoute) {
			s.logger.Warn("Create: route %s -> %s already exists", req.From, req.To)
			return nil, ErrDuplicateRoute
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: route id=%d created, number=%d", route.ID, route.RouteNumber)
	return models.FromDomainRoute(route), nil
}

// GetByID получает маршрут по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RouteResponse, error) {
	s.logger.Info("GetByID: fetching route id=%d", id)

	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("GetByID: route id=%d not found", id)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("GetByID: repository error for route id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoute(route), nil
}

// List получает все маршруты
func (s *Service) List(ctx context.Context) (*models.RouteListResponse, error) {
	s.logger.Info("List: fetching routes")

	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d routes", len(routes))
	return models.FromDomainRouteList(routes), nil
}

// Update частично обновляет маршрут
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRouteRequest) (*models.RouteResponse, error) {
	s.logger.Info("Update: updating route id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for route id=%d", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for route id=%d: %v", id, err)
		return nil, err
	}

	if err := s.routeRepo.Update(ctx, id, req.ToDomainUpdate()); err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("Update: route id=%d not found", id)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("Update: repository error for route id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete удаляет маршрут
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting route id=%d", id)

	if err := s.routeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("Delete: route id=%d not found", id)
			return ErrRouteNotFound
		}
		s.logger.Error("Delete: repository error for route id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: route id=%d deleted", id)
	return nil
}

// Валидация

func validateCreate(req *models.CreateRouteRequest) error {
	if req.From == "" || req.To == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	}
	if req.DistanceKM <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	return nil
}

func validateUpdate(req *models.UpdateRouteRequest) error {
	if req.From != nil && *req.From == "" {
		return fmt.Errorf("%w: origin cannot be empty", ErrInvalidInput)
	}
	if req.To != nil && *req.To == "" {
		return fmt.Errorf("%w: destination cannot be empty", ErrInvalidInput)
	}
	if req.DistanceKM != nil && *req.DistanceKM <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	return nil
}
