package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"railway-booking/internal/data/entity"
)

// SeatAllocator derives a seat label from the travel class and a random
// slot in [1, seatsPerCoach]. Capacity and duplicate seats are not
// modeled; the data has no per-date inventory to check against.
type SeatAllocator struct {
	mu            sync.Mutex // rand.Rand is not safe for concurrent use
	rnd           *rand.Rand
	seatsPerCoach int
}

func NewSeatAllocator(rnd *rand.Rand, seatsPerCoach int) *SeatAllocator {
	if seatsPerCoach <= 0 {
		seatsPerCoach = 72
	}
	return &SeatAllocator{rnd: rnd, seatsPerCoach: seatsPerCoach}
}

// Allocate returns e.g. "3AC-41" for class "3ac".
func (a *SeatAllocator) Allocate(class entity.TravelClass) string {
	a.mu.Lock()
	slot := a.rnd.Intn(a.seatsPerCoach) + 1
	a.mu.Unlock()

	return fmt.Sprintf("%s-%d", strings.ToUpper(string(class)), slot)
}
