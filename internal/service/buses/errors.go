package buses

import "errors"

var (
	// ErrBusNotFound возвращается, когда автобус не найден
	ErrBusNotFound = errors.New("service.buses: bus not found")

	// ErrRouteNotFound возвращается, когда назначаемый маршрут не найден
	ErrRouteNotFound = errors.New("service.buses: route not found")

	// ErrDuplicateNumber возвращается при создании автобуса с занятым номером
	ErrDuplicateNumber = errors.New("service.buses: bus number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.buses: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.buses: internal error")
)
