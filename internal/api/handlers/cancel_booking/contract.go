package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/integrations/identity"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, bookingID string, principal identity.Principal) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
