package payment_webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/integrations/paymentprovider"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

const testSecret = "whsec_test_secret"

type fakeBookingsService struct {
	confirmed []string
	err       error
}

func (s *fakeBookingsService) ConfirmPayment(_ context.Context, bookingID string) error {
	if s.err != nil {
		return s.err
	}
	s.confirmed = append(s.confirmed, bookingID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func eventPayload(eventType, bookingID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"type": %q,
		"data": {"object": {"id": "pi_1", "metadata": {"bookingId": %q}}}
	}`, eventType, bookingID))
}

func doRequest(t *testing.T, handler *Handler, payload []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func requireAck(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code)

	var ack AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.Received)
}

func TestHandle_SucceededEventConfirmsBooking(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := eventPayload(paymentprovider.EventPaymentSucceeded, "bkg-1")
	rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, testSecret, time.Now()))

	requireAck(t, rec)
	assert.Equal(t, []string{"bkg-1"}, svc.confirmed)
}

func TestHandle_InvalidSignatureRejectedWithoutMutation(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := eventPayload(paymentprovider.EventPaymentSucceeded, "bkg-1")

	t.Run("wrong secret", func(t *testing.T) {
		rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, "whsec_wrong", time.Now()))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(t, handler, payload, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, testSecret, time.Now().Add(-time.Hour)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// Ни одно из событий не дошло до сервиса
	assert.Empty(t, svc.confirmed)
}

func TestHandle_DuplicateDeliveryAcked(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := eventPayload(paymentprovider.EventPaymentSucceeded, "bkg-1")
	sig := paymentprovider.SignPayload(payload, testSecret, time.Now())

	requireAck(t, doRequest(t, handler, payload, sig))
	requireAck(t, doRequest(t, handler, payload, sig))

	// Сервис идемпотентен, handler просто передает оба события
	assert.Equal(t, []string{"bkg-1", "bkg-1"}, svc.confirmed)
}

func TestHandle_OtherEventTypesIgnored(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := eventPayload(paymentprovider.EventPaymentFailed, "bkg-1")
	rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, testSecret, time.Now()))

	requireAck(t, rec)
	assert.Empty(t, svc.confirmed)
}

func TestHandle_EventWithoutBookingIDAcked(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := []byte(`{"id": "evt_1", "type": "payment_intent.succeeded", "data": {"object": {"id": "pi_1"}}}`)
	rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, testSecret, time.Now()))

	requireAck(t, rec)
	assert.Empty(t, svc.confirmed)
}

func TestHandle_UnknownBookingAcked(t *testing.T) {
	svc := &fakeBookingsService{err: bookings.ErrBookingNotFound}
	handler := NewHandler(svc, testSecret, nopLogger{})

	payload := eventPayload(paymentprovider.EventPaymentSucceeded, "bkg-missing")
	rec := doRequest(t, handler, payload, paymentprovider.SignPayload(payload, testSecret, time.Now()))

	// Подтверждаем прием, чтобы провайдер не ретраил событие бесконечно
	requireAck(t, rec)
}
