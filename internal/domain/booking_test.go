package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status         BookingStatus
		isActive       bool
		canBeCancelled bool
	}{
		{StatusPending, true, true},
		{StatusConfirmed, true, true},
		{StatusCancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.isActive, b.IsActive())
			assert.Equal(t, tt.canBeCancelled, b.CanBeCancelled())
		})
	}
}

func TestBookingOverlapsRange(t *testing.T) {
	booking := &Booking{
		CheckInDate:  date(2026, time.June, 10),
		CheckOutDate: date(2026, time.June, 13),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "fully inside",
			checkIn:  date(2026, time.June, 11),
			checkOut: date(2026, time.June, 12),
			want:     true,
		},
		{
			name:     "partial overlap at start",
			checkIn:  date(2026, time.June, 8),
			checkOut: date(2026, time.June, 11),
			want:     true,
		},
		{
			name:     "partial overlap at end",
			checkIn:  date(2026, time.June, 12),
			checkOut: date(2026, time.June, 15),
			want:     true,
		},
		{
			name: "back-to-back: new check-in on existing check-out day",
			// выезд одного гостя в день заезда другого - не пересечение
			checkIn:  date(2026, time.June, 13),
			checkOut: date(2026, time.June, 15),
			want:     false,
		},
		{
			name:     "back-to-back: new check-out on existing check-in day",
			checkIn:  date(2026, time.June, 8),
			checkOut: date(2026, time.June, 10),
			want:     false,
		},
		{
			name:     "completely before",
			checkIn:  date(2026, time.June, 1),
			checkOut: date(2026, time.June, 5),
			want:     false,
		},
		{
			name:     "completely after",
			checkIn:  date(2026, time.June, 20),
			checkOut: date(2026, time.June, 22),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.OverlapsRange(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBookingNights(t *testing.T) {
	b := &Booking{
		CheckInDate:  date(2026, time.June, 10),
		CheckOutDate: date(2026, time.June, 13),
	}
	assert.Equal(t, 3, b.Nights())

	broken := &Booking{
		CheckInDate:  date(2026, time.June, 13),
		CheckOutDate: date(2026, time.June, 10),
	}
	assert.Equal(t, 0, broken.Nights())
}
