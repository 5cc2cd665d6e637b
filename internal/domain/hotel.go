package domain

import "time"

// Hotel represents a hotel listing
type Hotel struct {
	ID          string
	Name        string
	Type        string // "Hotel", "Apartment", "Resort", ...
	City        string
	Address     string
	Description string
	StarRating  int
	Images      []string
	Amenities   []string
	OwnerID     *string // ID пользователя-владельца (опционально)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HotelsFilter фильтр для поиска отелей
type HotelsFilter struct {
	City          *string // Поиск по городу (регистронезависимый, частичное совпадение)
	MinStarRating *int    // Минимальный рейтинг
}
