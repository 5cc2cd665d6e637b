package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/integrations/identity"
)

const (
	msgMissingToken = "требуется авторизация: отсутствует Bearer токен"
	msgInvalidToken = "требуется авторизация: недействительный токен"
	msgAuthFailed   = "не удалось проверить авторизацию"
)

type principalContextKey struct{}

// TokenVerifier интерфейс проверки токенов (реализуется identity.Client)
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*identity.Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации: проверяет Bearer токен через identity-провайдера
// и кладет Principal в контекст запроса. Сервисный слой идентичность не выводит -
// только принимает готовый capability-объект.
func Auth(verifier TokenVerifier, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				log.Warn("Auth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					log.Warn("Auth: invalid token: %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				log.Error("Auth: identity provider error: %v", err)
				handlers.RespondError(w, http.StatusBadGateway, msgAuthFailed)
				return
			}

			ctx := ContextWithPrincipal(r.Context(), *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithPrincipal кладет Principal в контекст запроса
func ContextWithPrincipal(ctx context.Context, principal identity.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext возвращает Principal, положенный Auth middleware
func PrincipalFromContext(ctx context.Context) (identity.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(identity.Principal)
	return principal, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
