package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
)

// Booking is created exactly once at purchase time and never mutated.
// PNR is the public identity: exactly 10 characters, unique for the
// lifetime of the system (enforced by a unique index on bookings.pnr).
type Booking struct {
	BaseSimple
	PNR             string        `db:"pnr"`
	UserID          uuid.UUID     `db:"user_id"`
	TrainID         uuid.UUID     `db:"train_id"`
	PassengerName   string        `db:"passenger_name"`
	PassengerAge    int           `db:"passenger_age"`
	PassengerGender string        `db:"passenger_gender"`
	TravelDate      time.Time     `db:"travel_date"`
	Class           TravelClass   `db:"class"`
	SeatNumber      string        `db:"seat_number"`
	FarePaid        float64       `db:"fare_paid"` // frozen at creation, never recomputed
	Status          BookingStatus `db:"booking_status"`
}
