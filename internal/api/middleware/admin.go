package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

const msgAdminOnly = "доступ только для администраторов"

// RequireAdmin middleware авторизации: пропускает только администраторов.
// Ставится после Auth - Principal уже должен быть в контексте.
func RequireAdmin(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				log.Error("RequireAdmin: no principal in context: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if !principal.IsAdmin {
				log.Warn("RequireAdmin: user=%s is not an admin: %s %s", principal.UserID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
