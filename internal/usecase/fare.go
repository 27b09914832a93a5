package usecase

import (
	"fmt"

	"railway-booking/internal/data/entity"
	"railway-booking/pkg/utils"
)

// Fixed multiplier table over the base fare. Exhaustive for the four
// travel classes.
var classMultipliers = map[entity.TravelClass]float64{
	entity.ClassSleeper:  1.0,
	entity.ClassThirdAC:  1.5,
	entity.ClassSecondAC: 2.0,
	entity.ClassFirstAC:  3.0,
}

// FareCalculator prices a travel class against a train's base fare. Pure,
// no side effects. What happens on an unrecognized class is a policy
// decision (config BOOKING_UNKNOWN_CLASS_POLICY): "default" prices it at
// the base fare, "reject" refuses the booking.
type FareCalculator struct {
	unknownPolicy string
}

func NewFareCalculator(unknownPolicy string) *FareCalculator {
	return &FareCalculator{unknownPolicy: unknownPolicy}
}

func (f *FareCalculator) Fare(base float64, class entity.TravelClass) (float64, error) {
	multiplier, ok := classMultipliers[class]
	if !ok {
		if f.unknownPolicy == utils.UnknownClassReject {
			return 0, fmt.Errorf("%w: unknown travel class %q", entity.ErrValidation, class)
		}
		multiplier = 1.0
	}
	return base * multiplier, nil
}
