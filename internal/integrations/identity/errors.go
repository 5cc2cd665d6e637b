package identity

import "errors"

var (
	// ErrInvalidToken возвращается, когда identity-провайдер не подтвердил токен
	ErrInvalidToken = errors.New("identity client: invalid token")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
