package hotel

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

// Repository репозиторий для работы с отелями.
// Простое хранение без жизненного цикла: отель создается и читается.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отель
func (r *Repository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if hotel.ID == "" {
		hotel.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("hotels").
		Columns(
			"id",
			"name",
			"type",
			"city",
			"address",
			"description",
			"star_rating",
			"images",
			"amenities",
			"owner_id",
		).
		Values(
			hotel.ID,
			hotel.Name,
			hotel.Type,
			hotel.City,
			hotel.Address,
			hotel.Description,
			hotel.StarRating,
			pq.Array(hotel.Images),
			pq.Array(hotel.Amenities),
			hotel.OwnerID,
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

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return hotel, nil
}

// GetByID получает отель по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectHotels().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hotel, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}

	return hotel, nil
}

// List получает список отелей с фильтрацией по городу и минимальному рейтингу
func (r *Repository) List(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectHotels().OrderBy("name ASC")

	// Поиск по городу - регистронезависимое частичное совпадение
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"city": "%" + *filter.City + "%"})
	}
	if filter.MinStarRating != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"star_rating": *filter.MinStarRating})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

func selectHotels() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"type",
		"city",
		"address",
		"description",
		"star_rating",
		"images",
		"amenities",
		"owner_id",
		"created_at",
		"updated_at",
	).From("hotels")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHotel(row rowScanner) (*domain.Hotel, error) {
	var hotel domain.Hotel
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Type,
		&hotel.City,
		&hotel.Address,
		&hotel.Description,
		&hotel.StarRating,
		pq.Array(&hotel.Images),
		pq.Array(&hotel.Amenities),
		&hotel.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return &hotel, nil
}
