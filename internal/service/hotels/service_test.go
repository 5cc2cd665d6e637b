package hotels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelService/internal/service/hotels/models"
)

type fakeRepository struct {
	hotels map[string]*domain.Hotel

	lastFilter domain.HotelsFilter
	listCalled bool
}

func (r *fakeRepository) Create(_ context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	copied := *hotel
	copied.ID = "hotel-new"
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	if r.hotels == nil {
		r.hotels = make(map[string]*domain.Hotel)
	}
	r.hotels[copied.ID] = &copied
	return &copied, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := r.hotels[id]
	if !ok {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return h, nil
}

func (r *fakeRepository) List(_ context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, error) {
	r.listCalled = true
	r.lastFilter = filter

	var result []*domain.Hotel
	for _, h := range r.hotels {
		result = append(result, h)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateHotelRequest {
	return &models.CreateHotelRequest{
		Name:        "Гранд Отель",
		Type:        "Hotel",
		City:        "Санкт-Петербург",
		Address:     "Невский проспект, 1",
		Description: "Отель в центре города",
		StarRating:  5,
		Amenities:   []string{"Wi-Fi", "Завтрак"},
	}
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "hotel-new", resp.ID)
		assert.Equal(t, "Гранд Отель", resp.Name)
		assert.Equal(t, 5, resp.StarRating)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateHotelRequest)
		}{
			{"empty name", func(r *models.CreateHotelRequest) { r.Name = "  " }},
			{"empty type", func(r *models.CreateHotelRequest) { r.Type = "" }},
			{"empty city", func(r *models.CreateHotelRequest) { r.City = "" }},
			{"empty address", func(r *models.CreateHotelRequest) { r.Address = "" }},
			{"empty description", func(r *models.CreateHotelRequest) { r.Description = "" }},
			{"rating too low", func(r *models.CreateHotelRequest) { r.StarRating = 0 }},
			{"rating too high", func(r *models.CreateHotelRequest) { r.StarRating = 6 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(req)

				svc := NewService(&fakeRepository{}, nopLogger{})
				_, err := svc.Create(context.Background(), req)
				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepository{hotels: map[string]*domain.Hotel{
		"hotel-1": {ID: "hotel-1", Name: "Гранд Отель", StarRating: 5},
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "hotel-1")
		require.NoError(t, err)
		assert.Equal(t, "Гранд Отель", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing")
		require.ErrorIs(t, err, ErrHotelNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := NewService(repo, nopLogger{})

		city := "Москва"
		rating := 4
		_, err := svc.List(context.Background(), domain.HotelsFilter{City: &city, MinStarRating: &rating})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.City)
		assert.Equal(t, "Москва", *repo.lastFilter.City)
		require.NotNil(t, repo.lastFilter.MinStarRating)
		assert.Equal(t, 4, *repo.lastFilter.MinStarRating)
	})

	t.Run("rejects out-of-range rating without touching repository", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := NewService(repo, nopLogger{})

		rating := 9
		_, err := svc.List(context.Background(), domain.HotelsFilter{MinStarRating: &rating})
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.False(t, repo.listCalled)
	})
}
