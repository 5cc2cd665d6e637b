package hotels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels/models"
)

// Service сервис для работы с отелями
type Service struct {
	hotelRepo HotelRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса отелей
func NewService(hotelRepo HotelRepository, logger Logger) *Service {
	return &Service{
		hotelRepo: hotelRepo,
		logger:    logger,
	}
}

// Create создает новый отель (доступно только администраторам, проверка - в middleware)
func (s *Service) Create(ctx context.Context, req *models.CreateHotelRequest) (*models.HotelResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	hotel, err := s.hotelRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created hotel id=%s name=%q", hotel.ID, hotel.Name)
	return models.FromDomainHotel(hotel), nil
}

// GetByID получает отель по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.HotelResponse, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("GetByID: hotel id=%s not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetByID: repository error for hotel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHotel(hotel), nil
}

// List получает список отелей с фильтрацией по городу и минимальному рейтингу
func (s *Service) List(ctx context.Context, filter domain.HotelsFilter) (*models.HotelListResponse, error) {
	if filter.MinStarRating != nil {
		rating := *filter.MinStarRating
		if rating < domain.MinStarRating || rating > domain.MaxStarRating {
			s.logger.Warn("List: invalid star rating filter: %d", rating)
			return nil, fmt.Errorf("%w: star rating must be between %d and %d",
				ErrInvalidInput, domain.MinStarRating, domain.MaxStarRating)
		}
	}

	hotels, err := s.hotelRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d hotels", len(hotels))
	return models.FromDomainHotelList(hotels), nil
}

func validateCreateRequest(req *models.CreateHotelRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if req.StarRating < domain.MinStarRating || req.StarRating > domain.MaxStarRating {
		return fmt.Errorf("%w: star rating must be between %d and %d",
			ErrInvalidInput, domain.MinStarRating, domain.MaxStarRating)
	}
	return nil
}
