package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingModels "github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`  // "2025-07-01"
	CheckOutDate string `json:"checkOutDate"` // "2025-07-04"
	GuestCount   int    `json:"guestCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	// Парсим даты заезда и выезда
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return bookingModels.FromDomainBooking(resp.Booking)
}
