package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Title       string   `json:"title"`
	NightlyRate float64  `json:"nightlyRate"`
	MaxGuests   int      `json:"maxGuests"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateRoomRequest) ToDomain(hotelID string) *domain.Room {
	return &domain.Room{
		HotelID:     hotelID,
		Title:       r.Title,
		NightlyRate: r.NightlyRate,
		MaxGuests:   r.MaxGuests,
		Description: r.Description,
		Amenities:   r.Amenities,
		Images:      r.Images,
	}
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID          string   `json:"id"`
	HotelID     string   `json:"hotelId"`
	Title       string   `json:"title"`
	NightlyRate float64  `json:"nightlyRate"`
	MaxGuests   int      `json:"maxGuests"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Title:       r.Title,
		NightlyRate: r.NightlyRate,
		MaxGuests:   r.MaxGuests,
		Description: r.Description,
		Amenities:   r.Amenities,
		Images:      r.Images,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
