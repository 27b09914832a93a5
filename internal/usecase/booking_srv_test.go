package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/dto/request"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rajdhaniExpress() *entity.Train {
	return &entity.Train{
		BaseNoDelete:       entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TrainNumber:        "12301",
		TrainName:          "Howrah Rajdhani Express",
		SourceStation:      "New Delhi",
		DestinationStation: "Howrah Junction",
		DepartureTime:      "16:10",
		ArrivalTime:        "09:55",
		Duration:           "17h 45m",
		BaseFare:           1000,
		AvailableClasses:   entity.AvailableClasses{Sleeper: true, ThirdAC: true},
		TotalSeats:         500,
	}
}

func newTestBookingService(trainRepo *fakeTrainRepo, bookingRepo *fakeBookingRepo, maxAttempts int) BookingService {
	fares := NewFareCalculator(utils.UnknownClassDefault)
	seats := NewSeatAllocator(rand.New(rand.NewSource(3)), 72)
	return NewBookingService(trainRepo, bookingRepo, fares, seats, maxAttempts,
		rand.New(rand.NewSource(4)), newTestLogger())
}

func validBookingRequest(trainID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		TrainID:         trainID.String(),
		PassengerName:   "Asha Verma",
		PassengerAge:    34,
		PassengerGender: "female",
		TravelDate:      "2026-09-15",
		Class:           "3ac",
	}
}

func authedContext(userID uuid.UUID) context.Context {
	return utils.SetUserContext(context.Background(), userID)
}

func TestCreateBooking_Success(t *testing.T) {
	train := rajdhaniExpress()
	trainRepo := newFakeTrainRepo(train)
	bookingRepo := newFakeBookingRepo()
	svc := newTestBookingService(trainRepo, bookingRepo, 5)

	userID := uuid.New()
	resp, err := svc.CreateBooking(authedContext(userID), validBookingRequest(train.ID))

	require.NoError(t, err)
	assert.Len(t, resp.PNR, utils.PNRLength)
	assert.Equal(t, float64(1500), resp.FarePaid, "3ac prices at base x1.5")
	assert.Regexp(t, `^3AC-([1-9]|[1-6][0-9]|7[0-2])$`, resp.SeatNumber)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, "2026-09-15", resp.TravelDate)
	assert.Equal(t, "Howrah Rajdhani Express", resp.Train.TrainName)

	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, userID, bookingRepo.created[0].UserID)
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	train := rajdhaniExpress()
	bookingRepo := newFakeBookingRepo()
	svc := newTestBookingService(newFakeTrainRepo(train), bookingRepo, 5)

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(train.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrAuthenticationRequired)
	assert.Empty(t, bookingRepo.attempts, "booking must never be attempted without a user")
}

func TestCreateBooking_AgeBoundaries(t *testing.T) {
	train := rajdhaniExpress()

	tests := []struct {
		age     int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{120, false},
		{121, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("age_%d", tt.age), func(t *testing.T) {
			bookingRepo := newFakeBookingRepo()
			svc := newTestBookingService(newFakeTrainRepo(train), bookingRepo, 5)

			req := validBookingRequest(train.ID)
			req.PassengerAge = tt.age

			_, err := svc.CreateBooking(authedContext(uuid.New()), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entity.ErrValidation)
				assert.Empty(t, bookingRepo.created)
			} else {
				require.NoError(t, err)
				assert.Len(t, bookingRepo.created, 1)
			}
		})
	}
}

func TestCreateBooking_TrainNotFound(t *testing.T) {
	svc := newTestBookingService(newFakeTrainRepo(), newFakeBookingRepo(), 5)

	_, err := svc.CreateBooking(authedContext(uuid.New()), validBookingRequest(uuid.New()))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrTrainNotFound)
}

func TestCreateBooking_ClassNotOffered(t *testing.T) {
	train := rajdhaniExpress() // no 1ac on this train
	svc := newTestBookingService(newFakeTrainRepo(train), newFakeBookingRepo(), 5)

	req := validBookingRequest(train.ID)
	req.Class = "1ac"

	_, err := svc.CreateBooking(authedContext(uuid.New()), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateBooking_PNRCollisionRetried(t *testing.T) {
	train := rajdhaniExpress()
	bookingRepo := newFakeBookingRepo()
	bookingRepo.createErrs = []error{
		fmt.Errorf("insert: %w", entity.ErrPNRConflict),
		fmt.Errorf("insert: %w", entity.ErrPNRConflict),
	}
	svc := newTestBookingService(newFakeTrainRepo(train), bookingRepo, 5)

	resp, err := svc.CreateBooking(authedContext(uuid.New()), validBookingRequest(train.ID))

	require.NoError(t, err, "collision must be retried, never surfaced")
	require.Len(t, bookingRepo.attempts, 3)
	assert.NotEqual(t, bookingRepo.attempts[0], bookingRepo.attempts[1], "retry uses a fresh code")
	assert.NotEqual(t, bookingRepo.attempts[1], bookingRepo.attempts[2])
	assert.Equal(t, bookingRepo.attempts[2], resp.PNR)
	assert.Len(t, bookingRepo.created, 1)
}

func TestCreateBooking_PNRCollisionExhausted(t *testing.T) {
	train := rajdhaniExpress()
	bookingRepo := newFakeBookingRepo()
	bookingRepo.createErrs = []error{
		fmt.Errorf("insert: %w", entity.ErrPNRConflict),
		fmt.Errorf("insert: %w", entity.ErrPNRConflict),
	}
	svc := newTestBookingService(newFakeTrainRepo(train), bookingRepo, 2)

	_, err := svc.CreateBooking(authedContext(uuid.New()), validBookingRequest(train.ID))

	require.Error(t, err)
	assert.Empty(t, bookingRepo.created, "no partial booking remains observable")
}

func TestGetBookingByPNR_RoundTrip(t *testing.T) {
	train := rajdhaniExpress()
	bookingRepo := newFakeBookingRepo()
	svc := newTestBookingService(newFakeTrainRepo(train), bookingRepo, 5)

	created, err := svc.CreateBooking(authedContext(uuid.New()), validBookingRequest(train.ID))
	require.NoError(t, err)

	found, err := svc.GetBookingByPNR(context.Background(), created.PNR)

	require.NoError(t, err)
	assert.Equal(t, created.PNR, found.PNR)
	assert.Equal(t, created.FarePaid, found.FarePaid)
	assert.Equal(t, created.SeatNumber, found.SeatNumber)
	assert.Equal(t, created.TravelDate, found.TravelDate)
	assert.Equal(t, created.Train, found.Train)
}

func TestGetBookingByPNR_BadLength(t *testing.T) {
	svc := newTestBookingService(newFakeTrainRepo(), newFakeBookingRepo(), 5)

	_, err := svc.GetBookingByPNR(context.Background(), "12345")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestGetBookingByPNR_NotFound(t *testing.T) {
	svc := newTestBookingService(newFakeTrainRepo(), newFakeBookingRepo(), 5)

	_, err := svc.GetBookingByPNR(context.Background(), "9999999999")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}
