package get_hotel_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type RoomsService interface {
	GetByHotelID(ctx context.Context, hotelID string) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
