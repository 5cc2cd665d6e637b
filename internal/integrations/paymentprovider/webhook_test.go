package paymentprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

var eventPayload = []byte(`{
	"id": "evt_123",
	"type": "payment_intent.succeeded",
	"data": {
		"object": {
			"id": "pi_456",
			"client_secret": "pi_456_secret",
			"amount": 30000,
			"currency": "rub",
			"status": "succeeded",
			"metadata": {"bookingId": "bkg_789"}
		}
	}
}`)

func TestConstructEvent_ValidSignature(t *testing.T) {
	now := time.Now()
	header := SignPayload(eventPayload, testSecret, now)

	event, err := constructEventAt(eventPayload, header, testSecret, now, DefaultSignatureTolerance)
	require.NoError(t, err)

	assert.Equal(t, "evt_123", event.ID)
	assert.Equal(t, EventPaymentSucceeded, event.Type)
	assert.Equal(t, "bkg_789", event.BookingID())
	assert.Equal(t, int64(30000), event.Data.Object.Amount)
}

func TestConstructEvent_WrongSecret(t *testing.T) {
	now := time.Now()
	header := SignPayload(eventPayload, "whsec_other_secret", now)

	_, err := constructEventAt(eventPayload, header, testSecret, now, DefaultSignatureTolerance)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestConstructEvent_TamperedPayload(t *testing.T) {
	now := time.Now()
	header := SignPayload(eventPayload, testSecret, now)

	tampered := []byte(`{"id": "evt_123", "type": "payment_intent.succeeded", "data": {"object": {"metadata": {"bookingId": "bkg_attacker"}}}}`)

	_, err := constructEventAt(tampered, header, testSecret, now, DefaultSignatureTolerance)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestConstructEvent_MalformedHeader(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"missing v1", "t=1700000000"},
		{"missing timestamp", "v1=deadbeef"},
		{"garbage", "not-a-signature"},
		{"non-numeric timestamp", "t=abc,v1=deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := constructEventAt(eventPayload, tt.header, testSecret, now, DefaultSignatureTolerance)
			require.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestConstructEvent_TimestampOutsideTolerance(t *testing.T) {
	now := time.Now()

	t.Run("too old", func(t *testing.T) {
		header := SignPayload(eventPayload, testSecret, now.Add(-10*time.Minute))
		_, err := constructEventAt(eventPayload, header, testSecret, now, DefaultSignatureTolerance)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("from the future", func(t *testing.T) {
		header := SignPayload(eventPayload, testSecret, now.Add(10*time.Minute))
		_, err := constructEventAt(eventPayload, header, testSecret, now, DefaultSignatureTolerance)
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("within tolerance", func(t *testing.T) {
		header := SignPayload(eventPayload, testSecret, now.Add(-2*time.Minute))
		_, err := constructEventAt(eventPayload, header, testSecret, now, DefaultSignatureTolerance)
		require.NoError(t, err)
	})
}
