package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type fakeRoomRepository struct {
	rooms map[string][]*domain.Room
}

func (r *fakeRoomRepository) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	copied := *room
	copied.ID = "room-new"
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	if r.rooms == nil {
		r.rooms = make(map[string][]*domain.Room)
	}
	r.rooms[copied.HotelID] = append(r.rooms[copied.HotelID], &copied)
	return &copied, nil
}

func (r *fakeRoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	for _, list := range r.rooms {
		for _, room := range list {
			if room.ID == id {
				return room, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeRoomRepository) GetByHotelID(_ context.Context, hotelID string) ([]*domain.Room, error) {
	return r.rooms[hotelID], nil
}

type fakeHotelRepository struct {
	existing map[string]bool
}

func (r *fakeHotelRepository) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	if !r.existing[id] {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Title:       "Стандартный двухместный",
		NightlyRate: 4500,
		MaxGuests:   2,
		Description: "Номер с видом во двор",
	}
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rooms := &fakeRoomRepository{}
		hotels := &fakeHotelRepository{existing: map[string]bool{"hotel-1": true}}
		svc := NewService(rooms, hotels, nopLogger{})

		resp, err := svc.Create(context.Background(), "hotel-1", validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "room-new", resp.ID)
		assert.Equal(t, "hotel-1", resp.HotelID)
		assert.Equal(t, 4500.0, resp.NightlyRate)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		svc := NewService(&fakeRoomRepository{}, &fakeHotelRepository{}, nopLogger{})

		_, err := svc.Create(context.Background(), "missing", validCreateRequest())
		require.ErrorIs(t, err, ErrHotelNotFound)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateRoomRequest)
		}{
			{"empty title", func(r *models.CreateRoomRequest) { r.Title = " " }},
			{"zero rate", func(r *models.CreateRoomRequest) { r.NightlyRate = 0 }},
			{"negative rate", func(r *models.CreateRoomRequest) { r.NightlyRate = -100 }},
			{"zero guests", func(r *models.CreateRoomRequest) { r.MaxGuests = 0 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(req)

				hotels := &fakeHotelRepository{existing: map[string]bool{"hotel-1": true}}
				svc := NewService(&fakeRoomRepository{}, hotels, nopLogger{})

				_, err := svc.Create(context.Background(), "hotel-1", req)
				require.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestGetByHotelID(t *testing.T) {
	rooms := &fakeRoomRepository{rooms: map[string][]*domain.Room{
		"hotel-1": {
			{ID: "room-1", HotelID: "hotel-1", Title: "Стандарт", NightlyRate: 3000, MaxGuests: 2},
			{ID: "room-2", HotelID: "hotel-1", Title: "Люкс", NightlyRate: 9000, MaxGuests: 4},
		},
	}}
	svc := NewService(rooms, &fakeHotelRepository{}, nopLogger{})

	resp, err := svc.GetByHotelID(context.Background(), "hotel-1")
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	empty, err := svc.GetByHotelID(context.Background(), "hotel-2")
	require.NoError(t, err)
	assert.Empty(t, empty.Rooms)
}
