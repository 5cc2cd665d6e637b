package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа к бронированию
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отмененное бронирование.
	// Повторная отмена сообщает о конфликте, а не проходит молча.
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
