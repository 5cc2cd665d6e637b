package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateHotelRequest запрос на создание отеля
type CreateHotelRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	StarRating  int      `json:"starRating"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	OwnerID     *string  `json:"-"` // заполняется из Principal, не из тела запроса
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateHotelRequest) ToDomain() *domain.Hotel {
	return &domain.Hotel{
		Name:        r.Name,
		Type:        r.Type,
		City:        r.City,
		Address:     r.Address,
		Description: r.Description,
		StarRating:  r.StarRating,
		Images:      r.Images,
		Amenities:   r.Amenities,
		OwnerID:     r.OwnerID,
	}
}

// HotelResponse ответ с данными отеля
type HotelResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	StarRating  int      `json:"starRating"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelListResponse ответ со списком отелей
type HotelListResponse struct {
	Hotels []HotelResponse `json:"hotels"`
}

// FromDomainHotel конвертирует domain модель в DTO
func FromDomainHotel(h *domain.Hotel) *HotelResponse {
	if h == nil {
		return nil
	}

	return &HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Type:        h.Type,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
		StarRating:  h.StarRating,
		Images:      h.Images,
		Amenities:   h.Amenities,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// FromDomainHotelList конвертирует список domain моделей в DTO
func FromDomainHotelList(hotels []*domain.Hotel) *HotelListResponse {
	resp := &HotelListResponse{
		Hotels: make([]HotelResponse, 0, len(hotels)),
	}

	for _, hotel := range hotels {
		if hotelResp := FromDomainHotel(hotel); hotelResp != nil {
			resp.Hotels = append(resp.Hotels, *hotelResp)
		}
	}

	return resp
}
