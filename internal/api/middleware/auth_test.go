package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/integrations/identity"
)

type fakeVerifier struct {
	principal *identity.Principal
	err       error

	gotToken string
}

func (v *fakeVerifier) VerifyToken(_ context.Context, token string) (*identity.Principal, error) {
	v.gotToken = token
	if v.err != nil {
		return nil, v.err
	}
	return v.principal, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func authRequest(authorization string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &fakeVerifier{principal: &identity.Principal{UserID: "user-1"}}

	var got identity.Principal
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Auth(verifier, nopLogger{})(next).ServeHTTP(rec, authRequest("Bearer tok_123"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok_123", verifier.gotToken)
	require.True(t, ok)
	assert.Equal(t, "user-1", got.UserID)
	assert.False(t, got.IsAdmin)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		verifierErr   error
		wantStatus    int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz", nil, http.StatusUnauthorized},
		{"invalid token", "Bearer tok_bad", identity.ErrInvalidToken, http.StatusUnauthorized},
		{"identity provider down", "Bearer tok_123", identity.ErrInternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{
				principal: &identity.Principal{UserID: "user-1"},
				err:       tt.verifierErr,
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rec := httptest.NewRecorder()
			Auth(verifier, nopLogger{})(next).ServeHTTP(rec, authRequest(tt.authorization))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		verifier := &fakeVerifier{principal: &identity.Principal{UserID: "admin-1", IsAdmin: true}}

		rec := httptest.NewRecorder()
		handler := Auth(verifier, nopLogger{})(RequireAdmin(nopLogger{})(next))
		handler.ServeHTTP(rec, authRequest("Bearer tok_admin"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		verifier := &fakeVerifier{principal: &identity.Principal{UserID: "user-1"}}

		rec := httptest.NewRecorder()
		handler := Auth(verifier, nopLogger{})(RequireAdmin(nopLogger{})(next))
		handler.ServeHTTP(rec, authRequest("Bearer tok_user"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no principal in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(nopLogger{})(next).ServeHTTP(rec, authRequest(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
