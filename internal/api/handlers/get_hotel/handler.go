package get_hotel

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels"
)

const (
	msgMissingHotelID = "не указан идентификатор отеля"
	msgHotelNotFound  = "отель не найден"
)

type Handler struct {
	service HotelsService
	logger  Logger
}

func NewHandler(service HotelsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID := mux.Vars(r)["hotelId"]
	if hotelID == "" {
		handlers.RespondBadRequest(w, msgMissingHotelID)
		return
	}

	result, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id} - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		default:
			h.logger.Error("GET /hotels/{id} - Failed to get hotel: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
