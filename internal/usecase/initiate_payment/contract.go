package initiate_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/paymentprovider"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByRoomAndPeriod(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// PaymentClient интерфейс клиента платежного провайдера
type PaymentClient interface {
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string, bookingID string) (*paymentprovider.PaymentIntent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
