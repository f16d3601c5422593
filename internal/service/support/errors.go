package support

import "errors"

var (
	// ErrTicketNotFound возвращается, когда обращение не найдено
	ErrTicketNotFound = errors.New("service.support: ticket not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.support: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.support: internal error")
)
