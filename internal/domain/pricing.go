package domain

import (
	"errors"
	"time"
)

// ErrInvalidDateRange возвращается, когда checkOut <= checkIn (нулевое или отрицательное количество ночей)
var ErrInvalidDateRange = errors.New("domain: check-out date must be after check-in date")

// NightsBetween возвращает количество ночей между датами заезда и выезда.
// Считаются пересечения границ календарных дней, а не прошедшие часы:
// заезд в понедельник 14:00 и выезд во вторник 10:00 - это одна ночь.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)

	nights := int(out.Sub(in) / (24 * time.Hour))
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}

	return nights, nil
}

// TotalPrice вычисляет полную стоимость проживания: ночи * цена за ночь.
// Чистая функция, без побочных эффектов. Цена всегда считается на сервере
// из актуальных данных номера - от клиента не принимается.
func TotalPrice(checkIn, checkOut time.Time, nightlyRate float64) (float64, error) {
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return float64(nights) * nightlyRate, nil
}

// dateOnly обнуляет время, оставляя только календарную дату (в UTC,
// чтобы исключить влияние переходов на летнее время)
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
