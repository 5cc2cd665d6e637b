package initiate_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	initiatePayment "github.com/m04kA/SMC-HotelService/internal/usecase/initiate_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgGuestLimit         = "количество гостей превышает вместимость номера"
	msgRoomNotAvailable   = "номер занят на выбранные даты"
	msgPaymentProvider    = "платежный сервис временно недоступен"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req InitiatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal.UserID)
	if err != nil {
		h.logger.Warn("POST /payments/intent - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrRoomNotFound):
			h.logger.Warn("POST /payments/intent - Room not found: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, initiatePayment.ErrInvalidDateRange):
			h.logger.Warn("POST /payments/intent - Invalid date range: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, initiatePayment.ErrGuestLimitExceeded):
			h.logger.Warn("POST /payments/intent - Guest limit exceeded: user_id=%s, room_id=%s, guests=%d",
				principal.UserID, req.RoomID, req.GuestCount)
			handlers.RespondBadRequest(w, msgGuestLimit)

		case errors.Is(err, initiatePayment.ErrRoomNotAvailable):
			h.logger.Warn("POST /payments/intent - Room not available: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, initiatePayment.ErrPaymentProvider):
			// Бронирование остается в статусе pending - клиент может повторить запрос
			h.logger.Error("POST /payments/intent - Payment provider failed: user_id=%s, room_id=%s, error=%v",
				principal.UserID, req.RoomID, err)
			handlers.RespondBadGateway(w, msgPaymentProvider)

		case errors.Is(err, initiatePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/intent - Invalid input: user_id=%s, room_id=%s", principal.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/intent - Failed to initiate payment: user_id=%s, room_id=%s, error=%v",
				principal.UserID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /payments/intent - Payment initiated: booking_id=%s, user_id=%s, room_id=%s",
		result.Booking.ID, principal.UserID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
