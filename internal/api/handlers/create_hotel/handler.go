package create_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отеля"
	msgUnauthorized       = "требуется авторизация"
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

// Handle POST /api/v1/hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateHotelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владельцем становится создавший отель администратор
	req.OwnerID = &principal.UserID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("POST /hotels - Invalid input: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /hotels - Failed to create hotel: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels - Hotel created: hotel_id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
