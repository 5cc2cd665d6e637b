package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgGuestLimit         = "количество гостей превышает вместимость номера"
	msgRoomNotAvailable   = "номер занят на выбранные даты"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(principal.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrGuestLimitExceeded):
			h.logger.Warn("POST /bookings - Guest limit exceeded: user_id=%s, room_id=%s, guests=%d",
				principal.UserID, req.RoomID, req.GuestCount)
			handlers.RespondBadRequest(w, msgGuestLimit)

		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, room_id=%s, error=%v",
				principal.UserID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, room_id=%s",
		result.Booking.ID, principal.UserID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
