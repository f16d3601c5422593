package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	bookingRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/booking"
	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
	"github.com/avdeyev/BusPark-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Создание и отмена вынесены в отдельные use case'ы, здесь чтение
// и административные операции
type Service struct {
	bookingRepo BookingRepository
	routeRepo   RouteRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	routeRepo RouteRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		routeRepo:   routeRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по внутреннему ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCode получает бронирование по публичному коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingResponse, error) {
	s.logger.Info("GetByCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Порядок сортировки выбирается явно: travel_date (по возрастанию даты
// поездки) или booking_date (сначала свежие оформления)
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	sort, err := req.SortOrder()
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid sort=%v for user=%d", req.Sort, req.UserID)
		return nil, fmt.Errorf("%w: invalid sort order", ErrInvalidInput)
	}

	var status *domain.PaymentStatus
	if req.Status != nil {
		parsed, err := models.ToDomainPaymentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, sort, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по маршруту, периоду, статусу и включению
// отмененных. Доступно только администраторам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, route=%v, status=%v, includeCancelled=%v",
		req.RouteID, req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус оплаты бронирования
//
// Переход проверяется по таблице допустимых переходов. Статус Cancelled
// через этот метод недостижим: в него ведет только сценарий отмены
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainPaymentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if !booking.PaymentStatus.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.PaymentStatus, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.PaymentStatus, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)

	booking.PaymentStatus = newStatus
	return models.FromDomainBooking(booking), nil
}

// Update частично обновляет бронирование
// Изменять можно контактные данные пассажира и дату поездки,
// отмененные бронирования не редактируются
func (s *Service) Update(ctx context.Context, bookingID int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", bookingID)

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", bookingID, err)
		return nil, err
	}

	booking, err := s.getBooking(ctx, bookingID, "Update")
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		s.logger.Warn("Update: booking id=%d is cancelled", bookingID)
		return nil, ErrBookingCancelled
	}

	if err := s.bookingRepo.UpdateFields(ctx, bookingID, update); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.getBooking(ctx, bookingID, "Update")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: booking id=%d updated", bookingID)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование
// Жесткое удаление, доступно только администраторам
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

// GetTicket собирает данные билета для печати
func (s *Service) GetTicket(ctx context.Context, bookingID int64) (*models.TicketResponse, error) {
	s.logger.Info("GetTicket: building ticket for booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "GetTicket")
	if err != nil {
		return nil, err
	}

	route, err := s.routeRepo.GetByID(ctx, booking.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			s.logger.Warn("GetTicket: route id=%d not found for booking id=%d", booking.RouteID, bookingID)
			return nil, ErrRouteNotFound
		}
		s.logger.Error("GetTicket: failed to get route id=%d: %v", booking.RouteID, err)
		return nil, fmt.Errorf("%w: GetTicket - failed to get route: %v", ErrInternal, err)
	}

	return &models.TicketResponse{
		BookingCode:   booking.BookingCode,
		PassengerName: booking.Passenger.Name,
		From:          route.From,
		To:            route.To,
		RouteNumber:   route.RouteNumber,
		Seats:         booking.Seats,
		TravelDate:    booking.TravelDate,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: string(booking.PaymentStatus),
	}, nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// validateUpdate проверяет непустые поля частичного обновления
func validateUpdate(update domain.BookingUpdate) error {
	if update.PassengerName != nil && *update.PassengerName == "" {
		return fmt.Errorf("%w: passenger name cannot be empty", ErrInvalidInput)
	}
	if update.PassengerEmail != nil && *update.PassengerEmail == "" {
		return fmt.Errorf("%w: passenger email cannot be empty", ErrInvalidInput)
	}
	if update.PassengerPhone != nil && *update.PassengerPhone == "" {
		return fmt.Errorf("%w: passenger phone cannot be empty", ErrInvalidInput)
	}
	return nil
}
