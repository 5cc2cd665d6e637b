package paymentprovider

// MetadataBookingID ключ метаданных, связывающий платеж с бронированием
const MetadataBookingID = "bookingId"

// Event types, которые присылает провайдер
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentIntent намерение платежа, созданное у провайдера.
// ClientSecret передается клиенту для завершения оплаты на его стороне.
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Amount       int64             `json:"amount"` // в минорных единицах валюты
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata"`
}

// Event webhook-событие провайдера.
// Доставка at-least-once: одно и то же событие может прийти несколько раз.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object PaymentIntent `json:"object"`
	} `json:"data"`
}

// BookingID возвращает ID бронирования из метаданных платежа
func (e *Event) BookingID() string {
	return e.Data.Object.Metadata[MetadataBookingID]
}

// errorResponse модель ошибки от провайдера
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
