package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного провайдера.
// REST API провайдера принимает form-encoded запросы с Bearer-авторизацией
// по секретному ключу.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного провайдера
func NewClient(apiURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL:    apiURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePaymentIntent создает у провайдера намерение платежа на указанную сумму
// (в минорных единицах валюты), привязанное к бронированию через метаданные.
// Само бронирование при этом не меняется - оно остается pending до webhook'а.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string, bookingID string) (*PaymentIntent, error) {
	endpoint := fmt.Sprintf("%s/v1/payment_intents", c.apiURL)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set(fmt.Sprintf("metadata[%s]", MetadataBookingID), bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CreatePaymentIntent: request failed for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			c.log.Error("CreatePaymentIntent: provider returned %d for booking_id=%s: %s",
				resp.StatusCode, bookingID, errResp.Error.Message)
			return nil, fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, errResp.Error.Message)
		}

		c.log.Error("CreatePaymentIntent: provider returned %d for booking_id=%s", resp.StatusCode, bookingID)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if intent.ID == "" || intent.ClientSecret == "" {
		return nil, fmt.Errorf("%w: missing id or client_secret in response", ErrInvalidResponse)
	}

	c.log.Info("CreatePaymentIntent: created intent id=%s for booking_id=%s, amount=%d %s",
		intent.ID, bookingID, amountMinor, currency)

	return &intent, nil
}
