package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hotelRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

// Service сервис для работы с номерами отелей
type Service struct {
	roomRepo  RoomRepository
	hotelRepo HotelRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, hotelRepo HotelRepository, logger Logger) *Service {
	return &Service{
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		logger:    logger,
	}
}

// Create создает номер в отеле.
// Номер всегда создается в контексте существующего отеля.
func (s *Service) Create(ctx context.Context, hotelID string, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Проверяем, что отель существует
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("Create: hotel id=%s not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Create: failed to get hotel id=%s: %v", hotelID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.Create(ctx, req.ToDomain(hotelID))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%s in hotel id=%s", room.ID, hotelID)
	return models.FromDomainRoom(room), nil
}

// GetByHotelID получает список номеров отеля
func (s *Service) GetByHotelID(ctx context.Context, hotelID string) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.GetByHotelID(ctx, hotelID)
	if err != nil {
		s.logger.Error("GetByHotelID: repository error for hotel id=%s: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetByHotelID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByHotelID: fetched %d rooms for hotel id=%s", len(rooms), hotelID)
	return models.FromDomainRoomList(rooms), nil
}

func validateCreateRequest(req *models.CreateRoomRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.NightlyRate <= 0 {
		return fmt.Errorf("%w: nightly rate must be positive", ErrInvalidInput)
	}
	if req.MaxGuests <= 0 {
		return fmt.Errorf("%w: max guests must be positive", ErrInvalidInput)
	}
	return nil
}
