package usecase

import (
	"math/rand"
	"time"

	"railway-booking/internal/data/repository"
	"railway-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Train   TrainService
	Booking BookingService
	Status  StatusService
	User    UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	fares := NewFareCalculator(config.Booking.UnknownClassPolicy)
	seats := NewSeatAllocator(rand.New(rand.NewSource(time.Now().UnixNano())), config.Booking.SeatsPerCoach)
	pnrSource := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	return &Service{
		Train: NewTrainService(repo.Train, fares, log),
		Booking: NewBookingService(
			repo.Train,
			repo.Booking,
			fares,
			seats,
			config.Booking.PNRMaxAttempts,
			pnrSource,
			log,
		),
		Status: NewStatusService(repo.Train, repo.Status, log),
		User:   NewUserService(repo.Profile, repo.Booking, repo.Train, repo.Session, log),
	}
}
