package initiate_payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case бронирования с оплатой: бронирование создается в pending,
// у провайдера создается payment intent на полную стоимость, клиент завершает
// оплату по client secret. Подтверждение приходит асинхронно через webhook.
type UseCase struct {
	bookingRepo   BookingRepository
	roomRepo      RoomRepository
	paymentClient PaymentClient
	txManager     TransactionManager
	currency      string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		roomRepo:      roomRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		currency:      currency,
		logger:        logger,
	}
}

// Execute выполняет use case бронирования с оплатой.
//
// Вызов провайдера выполняется после коммита транзакции: держать внешний
// HTTP-вызов внутри сериализуемой транзакции нельзя. Если вызов провайдера
// не удался, бронирование остается pending - платеж по нему уже не придет,
// и пользователь может отменить его сам.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: user=%s, room=%s, check_in=%s, check_out=%s, guests=%d",
		req.UserID, req.RoomID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitiatePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер - авторитетный источник цены и вместимости
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("InitiatePayment: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("InitiatePayment: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость номера
	if err := validateCapacity(room, req.GuestCount); err != nil {
		uc.logger.Warn("InitiatePayment: guest count %d exceeds capacity %d of room id=%s",
			req.GuestCount, room.MaxGuests, req.RoomID)
		return nil, err
	}

	// 4. Считаем полную стоимость на сервере
	totalPrice, err := domain.TotalPrice(req.CheckInDate, req.CheckOutDate, room.NightlyRate)
	if err != nil {
		uc.logger.Warn("InitiatePayment: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	var result *domain.Booking

	// 5. Создаем pending-бронирование в сериализуемой транзакции с проверкой доступности
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := uc.bookingRepo.GetActiveByRoomAndPeriod(txCtx, req.RoomID, req.CheckInDate, req.CheckOutDate)
		if err != nil {
			uc.logger.Error("InitiatePayment: failed to get active bookings: %v", err)
			return fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
		}

		if anyOverlapping(active, req) {
			uc.logger.Warn("InitiatePayment: room id=%s is not available for the requested dates", req.RoomID)
			return ErrRoomNotAvailable
		}

		booking := &domain.Booking{
			UserID:       req.UserID,
			HotelID:      room.HotelID,
			RoomID:       room.ID,
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			GuestCount:   req.GuestCount,
			RoomTitle:    room.Title,
			TotalPrice:   totalPrice,
			Status:       domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("InitiatePayment: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Создаем payment intent у провайдера, сумма в минорных единицах валюты
	amountMinor := int64(math.Round(totalPrice * domain.MinorUnitsPerMajor))

	intent, err := uc.paymentClient.CreatePaymentIntent(ctx, amountMinor, uc.currency, result.ID)
	if err != nil {
		uc.logger.Error("InitiatePayment: provider call failed for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	uc.logger.Info("InitiatePayment: booking id=%s pending, intent id=%s, amount=%d %s",
		result.ID, intent.ID, amountMinor, uc.currency)

	return &Response{
		Booking:      result,
		ClientSecret: intent.ClientSecret,
	}, nil
}
