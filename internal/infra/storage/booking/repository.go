package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями.
// Единственный владелец таблицы bookings: все изменения статуса проходят через него.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// ID генерируется здесь (uuid), статус берется из переданной модели:
// confirmed для прямого бронирования, pending для пути через оплату.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"hotel_id",
			"room_id",
			"check_in_date",
			"check_out_date",
			"guest_count",
			"room_title",
			"total_price",
			"status",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.HotelID,
			booking.RoomID,
			booking.CheckInDate,
			booking.CheckOutDate,
			booking.GuestCount,
			booking.RoomTitle,
			booking.TotalPrice,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает историю бронирований пользователя, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetActiveByRoomAndPeriod получает активные (pending/confirmed) бронирования номера,
// пересекающиеся с диапазоном [checkIn, checkOut).
// Внутри транзакции добавляет FOR UPDATE - используется usecase'ами создания
// бронирования для предотвращения гонки за одни и те же даты.
func (r *Repository) GetActiveByRoomAndPeriod(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"check_in_date": checkOut}).
		Where(squirrel.Gt{"check_out_date": checkIn}).
		OrderBy("check_in_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoomAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoomAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ConfirmIfPending переводит бронирование pending -> confirmed.
// Условный UPDATE: срабатывает только если бронирование все еще pending.
// Возвращает true, если переход выполнен. false без ошибки означает,
// что бронирование не найдено либо уже покинуло состояние pending -
// классификацию выполняет сервисный слой.
func (r *Repository) ConfirmIfPending(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// CancelIfNotCancelled переводит бронирование в cancelled.
// Условный UPDATE гарантирует, что из двух конкурентных отмен
// успешной окажется ровно одна.
func (r *Repository) CancelIfNotCancelled(ctx context.Context, id string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfNotCancelled - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"hotel_id",
		"room_id",
		"check_in_date",
		"check_out_date",
		"guest_count",
		"room_title",
		"total_price",
		"status",
		"created_at",
		"updated_at",
	).From("bookings")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.HotelID,
		&booking.RoomID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.GuestCount,
		&booking.RoomTitle,
		&booking.TotalPrice,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
