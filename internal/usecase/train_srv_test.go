package usecase

import (
	"context"
	"testing"
	"time"

	"railway-booking/internal/data/entity"
	"railway-booking/internal/dto/request"
	"railway-booking/internal/dto/response"
	"railway-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrainService(trainRepo *fakeTrainRepo) TrainService {
	return NewTrainService(trainRepo, NewFareCalculator(utils.UnknownClassDefault), newTestLogger())
}

func TestSearch_OffersCarryPerClassFares(t *testing.T) {
	train := &entity.Train{
		BaseNoDelete:       entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TrainNumber:        "12951",
		TrainName:          "Mumbai Rajdhani",
		SourceStation:      "Mumbai Central",
		DestinationStation: "New Delhi",
		DepartureTime:      "17:00",
		ArrivalTime:        "08:32",
		Duration:           "15h 32m",
		BaseFare:           1200,
		AvailableClasses:   entity.AvailableClasses{ThirdAC: true, SecondAC: true, FirstAC: true},
	}
	svc := newTestTrainService(newFakeTrainRepo(train))

	offers, err := svc.Search(context.Background(), &request.SearchTrainsRequest{
		Source:      "Mumbai",
		Destination: "Delhi",
		Date:        "2026-09-15",
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal(t, "12951", offer.TrainNumber)
	assert.Equal(t, "2026-09-15", offer.TravelDate, "date is carried through, not filtered on")
	assert.Equal(t, []response.ClassFare{
		{Class: entity.ClassThirdAC, Fare: 1800},
		{Class: entity.ClassSecondAC, Fare: 2400},
		{Class: entity.ClassFirstAC, Fare: 3600},
	}, offer.ClassFares, "sleeper is absent, AC classes priced by multiplier")
}

func TestSearch_ZeroMatchesIsNotAnError(t *testing.T) {
	svc := newTestTrainService(newFakeTrainRepo())

	offers, err := svc.Search(context.Background(), &request.SearchTrainsRequest{
		Source:      "Atlantis",
		Destination: "",
	})

	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestSearch_InvalidDateRejected(t *testing.T) {
	svc := newTestTrainService(newFakeTrainRepo())

	_, err := svc.Search(context.Background(), &request.SearchTrainsRequest{Date: "15-09-2026"})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}
