package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainStatus rows are written by an external feed process. Several rows
// may exist per train; callers always want the most recently updated one.
type TrainStatus struct {
	ID              uuid.UUID `db:"id"`
	TrainID         uuid.UUID `db:"train_id"`
	CurrentStation  *string   `db:"current_station"`
	ExpectedArrival *string   `db:"expected_arrival"`
	ActualArrival   *string   `db:"actual_arrival"`
	DelayMinutes    *int      `db:"delay_minutes"`
	Status          string    `db:"status"`
	LastUpdated     time.Time `db:"last_updated"`
}
