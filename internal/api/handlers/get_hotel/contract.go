package get_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/hotels/models"
)

type HotelsService interface {
	GetByID(ctx context.Context, id string) (*models.HotelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
