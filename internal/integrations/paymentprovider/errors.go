package paymentprovider

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись webhook-события не прошла проверку.
	// Событие с неверной подписью отбрасывается до какой-либо обработки.
	ErrInvalidSignature = errors.New("paymentprovider: invalid webhook signature")

	// ErrProviderUnavailable возвращается, когда вызов платежного провайдера не удался.
	// Ошибка отдается вызывающему как есть - повторные попытки сервис не делает.
	ErrProviderUnavailable = errors.New("paymentprovider: provider request failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentprovider: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("paymentprovider: invalid response")
)
