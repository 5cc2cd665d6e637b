package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case прямого бронирования: номер бронируется сразу в confirmed,
// без платежного шлюза.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не забронировали номер на одни даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, room=%s, check_in=%s, check_out=%s, guests=%d",
		req.UserID, req.RoomID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер - авторитетный источник цены и вместимости.
	// Данные читаются заново при каждой попытке, без кэширования.
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость номера
	if err := validateCapacity(room, req.GuestCount); err != nil {
		uc.logger.Warn("CreateBooking: guest count %d exceeds capacity %d of room id=%s",
			req.GuestCount, room.MaxGuests, req.RoomID)
		return nil, err
	}

	// 4. Считаем полную стоимость на сервере: ночи * цена за ночь.
	// Цена от клиента не принимается.
	totalPrice, err := domain.TotalPrice(req.CheckInDate, req.CheckOutDate, room.NightlyRate)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования номера на эти даты с блокировкой (FOR UPDATE)
		active, err := uc.bookingRepo.GetActiveByRoomAndPeriod(txCtx, req.RoomID, req.CheckInDate, req.CheckOutDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active bookings: %v", err)
			return fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность номера
		if anyOverlapping(active, req) {
			uc.logger.Warn("CreateBooking: room id=%s is not available for the requested dates", req.RoomID)
			return ErrRoomNotAvailable
		}

		// 5.3. Создаем бронирование сразу в confirmed
		booking := &domain.Booking{
			UserID:       req.UserID,
			HotelID:      room.HotelID,
			RoomID:       room.ID,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			GuestCount:   req.GuestCount,
			RoomTitle:    room.Title,
			TotalPrice:   totalPrice,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total_price=%.2f", result.ID, result.TotalPrice)

	return &Response{Booking: result}, nil
}
