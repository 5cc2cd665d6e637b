package payment_webhook

import "context"

type BookingsService interface {
	ConfirmPayment(ctx context.Context, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
