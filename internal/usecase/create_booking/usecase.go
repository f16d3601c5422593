package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	routeRepo     RouteRepository
	txManager     TransactionManager
	codeGenerator CodeGenerator
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	routeRepo RouteRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		routeRepo:     routeRepo,
		txManager:     txManager,
		codeGenerator: ShortUUIDGenerator{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Итоговая сумма вычисляется на сервере: len(seats) * route.Price.
// Проверка занятости мест и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк (FOR UPDATE), чтобы два пассажира не
// выкупили одно и то же место одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: route=%d, passenger=%s, seats=%d, date=%s",
		req.RouteID, req.PassengerName, len(req.Seats), req.TravelDate.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем маршрут (цена нужна для расчета итоговой суммы)
	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("CreateBooking: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("CreateBooking: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	totalAmount := float64(len(req.Seats)) * route.Price

	status := domain.StatusPending
	if req.PaymentStatus != nil {
		status = domain.PaymentStatus(*req.PaymentStatus)
	}

	var result *domain.Booking

	// 3. Проверяем занятость мест и создаем бронирование в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.GetTakenSeats(txCtx, req.RouteID, req.TravelDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get taken seats: %v", err)
			return fmt.Errorf("%w: failed to get taken seats: %v", ErrInternal, err)
		}

		takenSet := make(map[string]struct{}, len(taken))
		for _, seat := range taken {
			takenSet[seat] = struct{}{}
		}
		for _, seat := range req.Seats {
			if _, ok := takenSet[seat]; ok {
				uc.logger.Warn("CreateBooking: seat %q already taken on route=%d, date=%s",
					seat, req.RouteID, req.TravelDate.Format(domain.DateFormat))
				return fmt.Errorf("%w: seat %q", ErrSeatTaken, seat)
			}
		}

		booking := &domain.Booking{
			BookingCode: uc.codeGenerator.Generate(),
			RouteID:     req.RouteID,
			Passenger: domain.Passenger{
				UserID: req.UserID,
				Name:   req.PassengerName,
				Email:  req.PassengerEmail,
				Phone:  req.PassengerPhone,
			},
			Seats:         req.Seats,
			TotalAmount:   totalAmount,
			PaymentStatus: status,
			TravelDate:    req.TravelDate,
			RefundStatus:  domain.RefundNotApplicable,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, code=%s, total=%.2f",
		result.ID, result.BookingCode, result.TotalAmount)

	return &Response{
		ID:            result.ID,
		BookingCode:   result.BookingCode,
		RouteID:       result.RouteID,
		Passenger:     result.Passenger,
		Seats:         result.Seats,
		TotalAmount:   result.TotalAmount,
		PaymentStatus: string(result.PaymentStatus),
		TravelDate:    result.TravelDate,
		BookingDate:   result.CreatedAt,
	}, nil
}
