package get_hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels/models"
)

type HotelsService interface {
	List(ctx context.Context, filter domain.HotelsFilter) (*models.HotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
