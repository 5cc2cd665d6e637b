package initiate_payment

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на бронирование с оплатой
type Request struct {
	UserID       string    // ID пользователя из identity-провайдера
	RoomID       string    // ID номера
	CheckInDate  time.Time // Дата заезда
	CheckOutDate time.Time // Дата выезда
	GuestCount   int       // Количество гостей
}

// Response модель ответа: pending-бронирование и client secret для завершения
// оплаты на стороне клиента
type Response struct {
	Booking      *domain.Booking
	ClientSecret string
}
