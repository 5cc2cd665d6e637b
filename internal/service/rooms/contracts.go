package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetByHotelID(ctx context.Context, hotelID string) ([]*domain.Room, error)
}

// HotelRepository интерфейс репозитория отелей (проверка существования отеля)
type HotelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
