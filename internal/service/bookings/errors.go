package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service.bookings: booking not found")

	// ErrRouteNotFound возвращается, когда маршрут бронирования не найден
	ErrRouteNotFound = errors.New("service.bookings: route not found")

	// ErrInvalidStatus возвращается при неизвестном статусе оплаты
	ErrInvalidStatus = errors.New("service.bookings: invalid payment status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("service.bookings: status transition not allowed")

	// ErrBookingCancelled возвращается при попытке изменить отмененное бронирование
	ErrBookingCancelled = errors.New("service.bookings: booking is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.bookings: internal error")
)
