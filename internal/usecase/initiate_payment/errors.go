package initiate_payment

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("initiate_payment: room not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("initiate_payment: invalid date range")

	// ErrGuestLimitExceeded возвращается, когда количество гостей превышает вместимость номера
	ErrGuestLimitExceeded = errors.New("initiate_payment: guest count exceeds room capacity")

	// ErrRoomNotAvailable возвращается, когда номер занят на запрошенные даты
	ErrRoomNotAvailable = errors.New("initiate_payment: room is not available for these dates")

	// ErrPaymentProvider возвращается, когда вызов платежного провайдера не удался.
	// Повторных попыток usecase не делает - ошибка сразу отдается вызывающему.
	ErrPaymentProvider = errors.New("initiate_payment: payment provider call failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_payment: internal error")
)
