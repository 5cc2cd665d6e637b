package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего identity-провайдера.
// Проверяет Bearer-токены и возвращает Principal с признаком администратора.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента identity-провайдера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyToken проверяет токен и возвращает идентичность вызывающего.
// Роль (is_admin) определяется провайдером по метаданным пользователя -
// сервис получает готовый capability-объект и не интерпретирует токен сам.
func (c *Client) VerifyToken(ctx context.Context, token string) (*Principal, error) {
	url := fmt.Sprintf("%s/internal/tokens/verify", c.baseURL)

	body, err := json.Marshal(verifyTokenRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var principal Principal
	if err := json.NewDecoder(resp.Body).Decode(&principal); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if principal.UserID == "" {
		return nil, fmt.Errorf("%w: empty user_id in response", ErrInvalidResponse)
	}

	return &principal, nil
}
