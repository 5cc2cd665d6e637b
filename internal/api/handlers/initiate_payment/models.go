package initiate_payment

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingModels "github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	initiatePayment "github.com/m04kA/SMC-HotelService/internal/usecase/initiate_payment"
)

// InitiatePaymentRequest HTTP request model
type InitiatePaymentRequest struct {
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`  // "2025-07-01"
	CheckOutDate string `json:"checkOutDate"` // "2025-07-04"
	GuestCount   int    `json:"guestCount"`
}

// InitiatePaymentResponse HTTP response model: pending-бронирование
// и client secret для завершения оплаты на стороне клиента
type InitiatePaymentResponse struct {
	Booking      *bookingModels.BookingResponse `json:"booking"`
	ClientSecret string                         `json:"clientSecret"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InitiatePaymentRequest) ToUseCaseRequest(userID string) (*initiatePayment.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &initiatePayment.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiatePayment.Response) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		Booking:      bookingModels.FromDomainBooking(resp.Booking),
		ClientSecret: resp.ClientSecret,
	}
}
