package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidInput)
	}

	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidInput)
	}

	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
	}

	if req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must not exceed %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	return nil
}

// validateCapacity проверяет, что номер вмещает запрошенное количество гостей
func validateCapacity(room *domain.Room, guestCount int) error {
	if !room.FitsGuests(guestCount) {
		return fmt.Errorf("%w: room fits at most %d guests", ErrGuestLimitExceeded, room.MaxGuests)
	}
	return nil
}

// anyOverlapping проверяет пересечение активных бронирований с запрошенным диапазоном
func anyOverlapping(bookings []*domain.Booking, req *Request) bool {
	for _, booking := range bookings {
		if booking.IsActive() && booking.OverlapsRange(req.CheckInDate, req.CheckOutDate) {
			return true
		}
	}
	return false
}
