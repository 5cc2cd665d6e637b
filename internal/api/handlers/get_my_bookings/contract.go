package get_my_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
