package paymentprovider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSignatureTolerance допустимый возраст подписи webhook-события.
// Защита от replay: события со слишком старой меткой времени отбрасываются.
const DefaultSignatureTolerance = 5 * time.Minute

// ConstructEvent проверяет подпись webhook-события и разбирает его тело.
//
// Формат заголовка подписи: "t=<unix>,v1=<hex>", где v1 - HMAC-SHA256
// от строки "<t>.<payload>" на общем секрете. Это граница доверия:
// при любом несоответствии событие отклоняется с ErrInvalidSignature
// и не обрабатывается.
func ConstructEvent(payload []byte, sigHeader string, secret string) (*Event, error) {
	return constructEventAt(payload, sigHeader, secret, time.Now(), DefaultSignatureTolerance)
}

func constructEventAt(payload []byte, sigHeader string, secret string, now time.Time, tolerance time.Duration) (*Event, error) {
	timestamp, signature, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	// Проверяем возраст метки времени
	eventTime := time.Unix(timestamp, 0)
	if now.Sub(eventTime) > tolerance || eventTime.Sub(now) > tolerance {
		return nil, fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	// Вычисляем ожидаемую подпись и сравниваем за константное время
	expected := computeSignature(timestamp, payload, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: failed to parse event payload: %v", ErrInvalidResponse, err)
	}

	return &event, nil
}

// SignPayload подписывает payload по той же схеме, что и провайдер.
// Используется в тестах для формирования валидных webhook-запросов.
func SignPayload(payload []byte, secret string, at time.Time) string {
	timestamp := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", timestamp, computeSignature(timestamp, payload, secret))
}

func computeSignature(timestamp int64, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (timestamp int64, signature string, err error) {
	if header == "" {
		return 0, "", fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp, err = strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, "", fmt.Errorf("%w: malformed timestamp", ErrInvalidSignature)
			}
		case "v1":
			signature = kv[1]
		}
	}

	if timestamp == 0 || signature == "" {
		return 0, "", fmt.Errorf("%w: malformed signature header", ErrInvalidSignature)
	}

	return timestamp, signature, nil
}
