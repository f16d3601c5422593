package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("service.users: user not found")

	// ErrDuplicateEmail возвращается при регистрации с занятым email
	ErrDuplicateEmail = errors.New("service.users: email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("service.users: invalid credentials")

	// ErrInvalidRefreshToken возвращается при неизвестном или истекшем refresh-токене
	ErrInvalidRefreshToken = errors.New("service.users: invalid refresh token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.users: internal error")
)
