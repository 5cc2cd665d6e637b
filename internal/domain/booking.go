package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID      string
	UserID  string // ID пользователя из внешнего identity-провайдера (opaque string)
	HotelID string
	RoomID  string

	CheckInDate  time.Time
	CheckOutDate time.Time
	GuestCount   int

	// Denormalized data for history
	RoomTitle  string
	TotalPrice float64

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights covered by the booking
func (b *Booking) Nights() int {
	nights, err := NightsBetween(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return 0
	}
	return nights
}

// IsPending returns true if the booking is awaiting payment confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking occupies the room (pending or confirmed)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled.
// Отмена - терминальный переход, повторная отмена невозможна.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OverlapsRange returns true if the booking's stay overlaps [checkIn, checkOut).
// Граничные случаи не считаются пересечением: выезд в день чужого заезда допустим.
func (b *Booking) OverlapsRange(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
