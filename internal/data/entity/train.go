package entity

type TravelClass string

const (
	ClassSleeper  TravelClass = "sleeper"
	ClassThirdAC  TravelClass = "3ac"
	ClassSecondAC TravelClass = "2ac"
	ClassFirstAC  TravelClass = "1ac"
)

// AvailableClasses mirrors the trains.available_classes JSONB column.
type AvailableClasses struct {
	Sleeper  bool `json:"sleeper"`
	ThirdAC  bool `json:"3ac"`
	SecondAC bool `json:"2ac"`
	FirstAC  bool `json:"1ac"`
}

func (a AvailableClasses) Has(class TravelClass) bool {
	switch class {
	case ClassSleeper:
		return a.Sleeper
	case ClassThirdAC:
		return a.ThirdAC
	case ClassSecondAC:
		return a.SecondAC
	case ClassFirstAC:
		return a.FirstAC
	}
	return false
}

// List returns the offered classes in fare order.
func (a AvailableClasses) List() []TravelClass {
	var classes []TravelClass
	for _, c := range []TravelClass{ClassSleeper, ClassThirdAC, ClassSecondAC, ClassFirstAC} {
		if a.Has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// Train is maintained by an external administrative process and is
// read-only here. Station names are free text, not station codes.
type Train struct {
	BaseNoDelete
	TrainNumber        string           `db:"train_number"`
	TrainName          string           `db:"train_name"`
	SourceStation      string           `db:"source_station"`
	DestinationStation string           `db:"destination_station"`
	DepartureTime      string           `db:"departure_time"` // HH:MM
	ArrivalTime        string           `db:"arrival_time"`   // HH:MM
	Duration           string           `db:"duration"`       // e.g. "16h 10m"
	BaseFare           float64          `db:"base_fare"`      // invariant: > 0
	AvailableClasses   AvailableClasses `db:"available_classes"`
	TotalSeats         int              `db:"total_seats"`
}
