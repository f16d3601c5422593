package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("create_booking: route not found")

	// ErrSeatTaken возвращается, когда хотя бы одно из мест уже занято
	ErrSeatTaken = errors.New("create_booking: seat already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
