package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	HotelID      string  `json:"hotelId"`
	RoomID       string  `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`  // "2025-07-01"
	CheckOutDate string  `json:"checkOutDate"` // "2025-07-04"
	GuestCount   int     `json:"guestCount"`
	RoomTitle    string  `json:"roomTitle"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		HotelID:      b.HotelID,
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: b.CheckOutDate.Format(domain.DateFormat),
		GuestCount:   b.GuestCount,
		RoomTitle:    b.RoomTitle,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
