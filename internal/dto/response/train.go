package response

import (
	"railway-booking/internal/data/entity"
)

type ClassFare struct {
	Class entity.TravelClass `json:"class"`
	Fare  float64            `json:"fare"`
}

// OfferResponse is a train annotated with the per-class fares computed for
// a search query.
type OfferResponse struct {
	ID                 string      `json:"id"`
	TrainNumber        string      `json:"train_number"`
	TrainName          string      `json:"train_name"`
	SourceStation      string      `json:"source_station"`
	DestinationStation string      `json:"destination_station"`
	DepartureTime      string      `json:"departure_time"`
	ArrivalTime        string      `json:"arrival_time"`
	Duration           string      `json:"duration"`
	BaseFare           float64     `json:"base_fare"`
	TravelDate         string      `json:"travel_date,omitempty"`
	ClassFares         []ClassFare `json:"class_fares"`
}

type TrainDetails struct {
	TrainNumber        string `json:"train_number"`
	TrainName          string `json:"train_name"`
	SourceStation      string `json:"source_station"`
	DestinationStation string `json:"destination_station"`
	DepartureTime      string `json:"departure_time,omitempty"`
	ArrivalTime        string `json:"arrival_time,omitempty"`
}

func TrainToDetails(train *entity.Train) TrainDetails {
	return TrainDetails{
		TrainNumber:        train.TrainNumber,
		TrainName:          train.TrainName,
		SourceStation:      train.SourceStation,
		DestinationStation: train.DestinationStation,
		DepartureTime:      train.DepartureTime,
		ArrivalTime:        train.ArrivalTime,
	}
}
