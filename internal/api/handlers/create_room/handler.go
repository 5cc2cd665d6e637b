package create_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingHotelID     = "не указан идентификатор отеля"
	msgHotelNotFound      = "отель не найден"
	msgInvalidInput       = "некорректные данные номера"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	if hotelID == "" {
		handlers.RespondBadRequest(w, msgMissingHotelID)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), hotelID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{id}/rooms - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/rooms - Invalid input: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /hotels/{id}/rooms - Failed to create room: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/rooms - Room created: room_id=%s, hotel_id=%s", result.ID, hotelID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
