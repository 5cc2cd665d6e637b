package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings"
)

const (
	msgMissingBookingID = "не указан идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "доступ к чужому бронированию запрещен"
	msgAlreadyCancelled = "бронирование уже отменено"
	msgUnauthorized     = "требуется авторизация"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID, principal)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s, user_id=%s",
				bookingID, principal.UserID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s",
				bookingID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%s, user_id=%s",
				bookingID, principal.UserID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, user_id=%s, error=%v",
				bookingID, principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s",
		bookingID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
