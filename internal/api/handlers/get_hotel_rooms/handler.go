package get_hotel_rooms

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

const msgMissingHotelID = "не указан идентификатор отеля"

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

// Handle GET /api/v1/hotels/{hotelId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	if hotelID == "" {
		handlers.RespondBadRequest(w, msgMissingHotelID)
		return
	}

	result, err := h.service.GetByHotelID(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/rooms - Failed to list rooms: hotel_id=%s, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
