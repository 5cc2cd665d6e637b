package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinStarRating = 1
	MaxStarRating = 5
	MaxGuestCount = 20 // верхняя граница на размер группы в одном бронировании
)

// Currency constants
const (
	// MinorUnitsPerMajor количество минорных единиц в основной валютной единице
	// (центов в долларе). Платежный провайдер принимает суммы в минорных единицах.
	MinorUnitsPerMajor = 100
)

// ActiveStatuses статусы бронирований, занимающих номер.
// Используются при проверке доступности номера на даты.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
