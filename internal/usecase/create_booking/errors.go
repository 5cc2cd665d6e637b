package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrGuestLimitExceeded возвращается, когда количество гостей превышает вместимость номера
	ErrGuestLimitExceeded = errors.New("create_booking: guest count exceeds room capacity")

	// ErrRoomNotAvailable возвращается, когда номер занят на запрошенные даты
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
