package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с номерами отелей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый номер в отеле
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"id",
			"hotel_id",
			"title",
			"nightly_rate",
			"max_guests",
			"description",
			"amenities",
			"images",
		).
		Values(
			room.ID,
			room.HotelID,
			room.Title,
			room.NightlyRate,
			room.MaxGuests,
			room.Description,
			pq.Array(room.Amenities),
			pq.Array(room.Images),
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

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает номер по ID.
// Вызывается при каждой попытке бронирования: цена и вместимость
// всегда читаются заново, без кэширования.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRooms().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// GetByHotelID получает список номеров отеля
func (r *Repository) GetByHotelID(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRooms().
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("nightly_rate ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHotelID - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

func selectRooms() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"hotel_id",
		"title",
		"nightly_rate",
		"max_guests",
		"description",
		"amenities",
		"images",
		"created_at",
		"updated_at",
	).From("rooms")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Title,
		&room.NightlyRate,
		&room.MaxGuests,
		&room.Description,
		pq.Array(&room.Amenities),
		pq.Array(&room.Images),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
