package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/integrations/paymentprovider"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

// SignatureHeader имя заголовка с подписью webhook-события
const SignatureHeader = "Payment-Signature"

// Входящие webhook-события до 64KB - с запасом для метаданных платежа
const maxPayloadBytes = 64 << 10

const (
	msgInvalidPayload   = "некорректное тело webhook-события"
	msgInvalidSignature = "некорректная подпись webhook-события"
)

// AckResponse подтверждение приема события провайдером
type AckResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	bookings      BookingsService
	webhookSecret string
	logger        Logger
}

func NewHandler(bookingsService BookingsService, webhookSecret string, logger Logger) *Handler {
	return &Handler{
		bookings:      bookingsService,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Handle POST /api/v1/payments/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Читаем сырое тело - подпись считается по байтам как есть
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	// 2. Проверяем подпись до любой обработки события
	event, err := paymentprovider.ConstructEvent(payload, r.Header.Get(SignatureHeader), h.webhookSecret)
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSignature)
		return
	}

	// 3. Обрабатываем только успешную оплату, остальные типы подтверждаем без действий
	if event.Type != paymentprovider.EventPaymentSucceeded {
		h.logger.Info("POST /payments/webhook - Event ignored: event_id=%s, type=%s", event.ID, event.Type)
		handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
		return
	}

	bookingID := event.BookingID()
	if bookingID == "" {
		h.logger.Warn("POST /payments/webhook - Event without booking id: event_id=%s", event.ID)
		handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
		return
	}

	// 4. Подтверждаем бронирование. Повторная доставка и неизвестное
	// бронирование подтверждаются провайдеру, чтобы он не слал ретраи.
	if err := h.bookings.ConfirmPayment(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("POST /payments/webhook - Booking not found: event_id=%s, booking_id=%s", event.ID, bookingID)
			handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
			return
		}

		h.logger.Error("POST /payments/webhook - Failed to confirm booking: event_id=%s, booking_id=%s, error=%v",
			event.ID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /payments/webhook - Booking confirmed: event_id=%s, booking_id=%s", event.ID, bookingID)
	handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
}
