package hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
