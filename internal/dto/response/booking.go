package response

import (
	"time"

	"railway-booking/internal/data/entity"
)

// BookingResponse is the receipt returned at purchase time and from the
// PNR / my-bookings lookups.
type BookingResponse struct {
	ID              string               `json:"id"`
	PNR             string               `json:"pnr"`
	PassengerName   string               `json:"passenger_name"`
	PassengerAge    int                  `json:"passenger_age"`
	PassengerGender string               `json:"passenger_gender"`
	TravelDate      string               `json:"travel_date"`
	Class           entity.TravelClass   `json:"class"`
	SeatNumber      string               `json:"seat_number"`
	FarePaid        float64              `json:"fare_paid"`
	Status          entity.BookingStatus `json:"booking_status"`
	Train           TrainDetails         `json:"train"`
	CreatedAt       time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, train *entity.Train) *BookingResponse {
	resp := &BookingResponse{
		ID:              booking.ID.String(),
		PNR:             booking.PNR,
		PassengerName:   booking.PassengerName,
		PassengerAge:    booking.PassengerAge,
		PassengerGender: booking.PassengerGender,
		TravelDate:      booking.TravelDate.Format("2006-01-02"),
		Class:           booking.Class,
		SeatNumber:      booking.SeatNumber,
		FarePaid:        booking.FarePaid,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}
	if train != nil {
		resp.Train = TrainToDetails(train)
	}
	return resp
}
