package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/integrations/identity"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type fakeBookingsService struct {
	resp *models.BookingResponse
	err  error

	gotBookingID string
	gotPrincipal identity.Principal
}

func (s *fakeBookingsService) Cancel(_ context.Context, bookingID string, principal identity.Principal) (*models.BookingResponse, error) {
	s.gotBookingID = bookingID
	s.gotPrincipal = principal
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(handler *Handler, bookingID string, principal *identity.Principal) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", nil)
	if principal != nil {
		req = req.WithContext(middleware.ContextWithPrincipal(req.Context(), *principal))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeBookingsService{resp: &models.BookingResponse{ID: "bkg-1", Status: "cancelled"}}
	handler := NewHandler(svc, nopLogger{})

	rec := doRequest(handler, "bkg-1", &identity.Principal{UserID: "user-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bkg-1", svc.gotBookingID)
	assert.Equal(t, "user-1", svc.gotPrincipal.UserID)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", bookings.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", bookings.ErrAlreadyCancelled, http.StatusConflict},
		{"internal error", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingsService{err: tt.serviceErr}
			handler := NewHandler(svc, nopLogger{})

			rec := doRequest(handler, "bkg-1", &identity.Principal{UserID: "user-1"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_NoPrincipal(t *testing.T) {
	svc := &fakeBookingsService{}
	handler := NewHandler(svc, nopLogger{})

	rec := doRequest(handler, "bkg-1", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.gotBookingID)
}
