package get_hotels

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

const (
	msgInvalidStarRating = "некорректное значение minStarRating"
	msgInvalidFilter     = "некорректные параметры фильтра"
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

// Handle GET /api/v1/hotels?city=...&minStarRating=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /hotels - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStarRating)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrInvalidInput):
			h.logger.Warn("GET /hotels - Invalid filter values: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /hotels - Failed to list hotels: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter читает фильтры из query-параметров
func parseFilter(r *http.Request) (domain.HotelsFilter, error) {
	var filter domain.HotelsFilter

	if city := r.URL.Query().Get("city"); city != "" {
		filter.City = ptr.Ptr(city)
	}

	if raw := r.URL.Query().Get("minStarRating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return domain.HotelsFilter{}, err
		}
		filter.MinStarRating = ptr.Ptr(rating)
	}

	return filter, nil
}
