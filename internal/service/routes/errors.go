package routes

import "errors"

var (
	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("service.routes: route not found")

	// ErrDuplicateRoute возвращается при создании уже существующего маршрута
	ErrDuplicateRoute = errors.New("service.routes: route already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.routes: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.routes: internal error")
)
