package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/integrations/identity"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// Единственный писатель статусов: pending -> confirmed выполняется только
// по подтвержденному платежному событию, переход в cancelled - только здесь.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свое бронирование; администратор - любое.
func (s *Service) GetByID(ctx context.Context, id string, principal identity.Principal) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, principal.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != principal.UserID && !principal.IsAdmin {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только свое бронирование; администратор - любое.
// Повторная отмена возвращает ErrAlreadyCancelled: конфликт, а не no-op.
func (s *Service) Cancel(ctx context.Context, bookingID string, principal identity.Principal) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, principal.UserID)

	// 1. Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем владение: чужое бронирование нельзя отменить без прав администратора
	if booking.UserID != principal.UserID && !principal.IsAdmin {
		s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", principal.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	// 3. Отмененное бронирование - терминальное состояние
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%s is already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	// 4. Условный UPDATE на уровне хранилища: из двух конкурентных отмен
	// пройдет ровно одна, вторая увидит конфликт
	cancelled, err := s.bookingRepo.CancelIfNotCancelled(ctx, bookingID)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !cancelled {
		s.logger.Warn("Cancel: booking id=%s was cancelled concurrently", bookingID)
		return nil, ErrAlreadyCancelled
	}

	// 5. Перечитываем актуальное состояние
	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return models.FromDomainBooking(updated), nil
}

// ConfirmPayment переводит бронирование pending -> confirmed по платежному событию.
// Идемпотентна: повторная доставка того же события для уже подтвержденного
// бронирования - no-op без ошибки (провайдер доставляет at-least-once).
// Политика гонки с отменой: отмена побеждает - подтверждение применяется
// только пока бронирование все еще pending.
func (s *Service) ConfirmPayment(ctx context.Context, bookingID string) error {
	s.logger.Info("ConfirmPayment: confirming booking id=%s", bookingID)

	confirmed, err := s.bookingRepo.ConfirmIfPending(ctx, bookingID)
	if err != nil {
		s.logger.Error("ConfirmPayment: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	if confirmed {
		s.logger.Info("ConfirmPayment: booking id=%s confirmed", bookingID)
		return nil
	}

	// Условный UPDATE не сработал: выясняем причину
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ConfirmPayment: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	switch {
	case booking.IsConfirmed():
		// Повторная доставка события - уже подтверждено
		s.logger.Info("ConfirmPayment: booking id=%s already confirmed, skipping", bookingID)
		return nil
	case booking.IsCancelled():
		// Бронирование отменили до прихода подтверждения - отмена побеждает
		s.logger.Warn("ConfirmPayment: booking id=%s already cancelled, confirmation ignored", bookingID)
		return nil
	default:
		s.logger.Error("ConfirmPayment: booking id=%s in unexpected status %s", bookingID, booking.Status)
		return fmt.Errorf("%w: ConfirmPayment - unexpected status %s", ErrInternal, booking.Status)
	}
}
