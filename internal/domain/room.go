package domain

import "time"

// Room represents a bookable room within a hotel.
// Данные номера считаются авторитетным источником цены и вместимости:
// при каждой попытке бронирования номер читается заново, без кэширования.
type Room struct {
	ID          string
	HotelID     string
	Title       string
	NightlyRate float64
	MaxGuests   int
	Description string
	Amenities   []string
	Images      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FitsGuests returns true if the room can accommodate the requested guest count
func (r *Room) FitsGuests(guestCount int) bool {
	return guestCount > 0 && guestCount <= r.MaxGuests
}
