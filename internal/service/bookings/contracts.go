package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
	GetActiveByRoomAndPeriod(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]*domain.Booking, error)
	ConfirmIfPending(ctx context.Context, id string) (bool, error)
	CancelIfNotCancelled(ctx context.Context, id string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
