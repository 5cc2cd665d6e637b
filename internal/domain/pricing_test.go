package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{
			name:     "two nights",
			checkIn:  date(2026, time.June, 1),
			checkOut: date(2026, time.June, 3),
			want:     2,
		},
		{
			name:     "single night",
			checkIn:  date(2026, time.June, 1),
			checkOut: date(2026, time.June, 2),
			want:     1,
		},
		{
			name:     "same day",
			checkIn:  date(2026, time.June, 1),
			checkOut: date(2026, time.June, 1),
			wantErr:  ErrInvalidDateRange,
		},
		{
			name:     "check-out before check-in",
			checkIn:  date(2026, time.June, 3),
			checkOut: date(2026, time.June, 1),
			wantErr:  ErrInvalidDateRange,
		},
		{
			name: "late check-in, early check-out still one night",
			// заезд в 14:00, выезд на следующий день в 10:00 - меньше суток по часам
			checkIn:  time.Date(2026, time.June, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, time.June, 2, 10, 0, 0, 0, time.UTC),
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NightsBetween(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	t.Run("nights times nightly rate", func(t *testing.T) {
		total, err := TotalPrice(date(2026, time.June, 1), date(2026, time.June, 3), 100)
		require.NoError(t, err)
		assert.Equal(t, 200.0, total)
	})

	t.Run("three nights", func(t *testing.T) {
		total, err := TotalPrice(date(2026, time.July, 10), date(2026, time.July, 13), 4500.50)
		require.NoError(t, err)
		assert.Equal(t, 13501.5, total)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := TotalPrice(date(2026, time.June, 3), date(2026, time.June, 3), 100)
		require.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
