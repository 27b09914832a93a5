package repository

import (
	"railway-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Train   TrainRepository
	Booking BookingRepository
	Status  StatusRepository
	Profile ProfileRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Train:   NewTrainRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Status:  NewStatusRepository(db, log),
		Profile: NewProfileRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
