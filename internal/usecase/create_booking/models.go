package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       string    // ID пользователя из identity-провайдера
	RoomID       string    // ID номера
	CheckInDate  time.Time // Дата заезда
	CheckOutDate time.Time // Дата выезда
	GuestCount   int       // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
