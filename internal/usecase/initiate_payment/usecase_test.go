package initiate_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/integrations/paymentprovider"
)

type fakeBookingRepo struct {
	active  []*domain.Booking
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.ID = "bkg-new"
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.created = append(r.created, &copied)
	return &copied, nil
}

func (r *fakeBookingRepo) GetActiveByRoomAndPeriod(_ context.Context, roomID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.active {
		if b.RoomID == roomID && b.OverlapsRange(checkIn, checkOut) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

// fakePaymentClient запоминает параметры последнего созданного intent
type fakePaymentClient struct {
	err error

	lastAmount    int64
	lastCurrency  string
	lastBookingID string
}

func (c *fakePaymentClient) CreatePaymentIntent(_ context.Context, amountMinor int64, currency string, bookingID string) (*paymentprovider.PaymentIntent, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.lastAmount = amountMinor
	c.lastCurrency = currency
	c.lastBookingID = bookingID
	return &paymentprovider.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Amount:       amountMinor,
		Currency:     currency,
		Status:       "requires_payment_method",
		Metadata:     map[string]string{paymentprovider.MetadataBookingID: bookingID},
	}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:          "room-1",
		HotelID:     "hotel-1",
		Title:       "Люкс с видом на море",
		NightlyRate: 100,
		MaxGuests:   3,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:       "user-1",
		RoomID:       "room-1",
		CheckInDate:  date(2026, time.June, 10),
		CheckOutDate: date(2026, time.June, 13),
		GuestCount:   2,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{"room-1": testRoom()}}
	payments := &fakePaymentClient{}

	uc := NewUseCase(bookings, rooms, payments, fakeTxManager{}, "rub", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование ждет подтверждения оплаты
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	// 3 ночи по 100
	assert.Equal(t, 300.0, resp.Booking.TotalPrice)
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)

	// Intent создан на полную стоимость в минорных единицах
	assert.Equal(t, int64(30000), payments.lastAmount)
	assert.Equal(t, "rub", payments.lastCurrency)
	assert.Equal(t, resp.Booking.ID, payments.lastBookingID)
}

func TestExecute_ProviderFailure(t *testing.T) {
	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{"room-1": testRoom()}}
	payments := &fakePaymentClient{err: errors.New("connection refused")}

	uc := NewUseCase(bookings, rooms, payments, fakeTxManager{}, "rub", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPaymentProvider)

	// Бронирование уже создано и остается pending
	require.Len(t, bookings.created, 1)
	assert.Equal(t, domain.StatusPending, bookings.created[0].Status)
}

func TestExecute_RoomNotAvailable(t *testing.T) {
	occupied := &domain.Booking{
		ID:           "bkg-1",
		RoomID:       "room-1",
		CheckInDate:  date(2026, time.June, 9),
		CheckOutDate: date(2026, time.June, 11),
		Status:       domain.StatusPending,
	}
	bookings := &fakeBookingRepo{active: []*domain.Booking{occupied}}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{"room-1": testRoom()}}
	payments := &fakePaymentClient{}

	uc := NewUseCase(bookings, rooms, payments, fakeTxManager{}, "rub", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Empty(t, bookings.created)
	// До провайдера дело не дошло
	assert.Empty(t, payments.lastBookingID)
}

func TestExecute_GuestLimitExceeded(t *testing.T) {
	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{"room-1": testRoom()}}
	payments := &fakePaymentClient{}

	uc := NewUseCase(bookings, rooms, payments, fakeTxManager{}, "rub", nopLogger{})

	req := validRequest()
	req.GuestCount = 10

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrGuestLimitExceeded)
	assert.Empty(t, bookings.created)
}

func TestExecute_FractionalRateRoundsToMinorUnits(t *testing.T) {
	room := testRoom()
	room.NightlyRate = 99.99

	bookings := &fakeBookingRepo{}
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{"room-1": room}}
	payments := &fakePaymentClient{}

	uc := NewUseCase(bookings, rooms, payments, fakeTxManager{}, "rub", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.InDelta(t, 299.97, resp.Booking.TotalPrice, 1e-9)
	assert.Equal(t, int64(29997), payments.lastAmount)
}
