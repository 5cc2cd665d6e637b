package create_room

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type RoomsService interface {
	Create(ctx context.Context, hotelID string, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
