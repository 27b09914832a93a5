package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== PNR ====================

// PNRLength is the public reservation-code contract: exactly 10 characters.
const PNRLength = 10

// GeneratePNR draws a candidate reservation code: PNRLength decimal digits
// with a non-zero first digit. The value is only a candidate -- the unique
// index on bookings.pnr is the arbiter, and the booking flow regenerates
// and retries on collision.
func GeneratePNR(rnd *rand.Rand) string {
	var b strings.Builder
	b.Grow(PNRLength)
	b.WriteByte(byte('1' + rnd.Intn(9)))
	for i := 1; i < PNRLength; i++ {
		b.WriteByte(byte('0' + rnd.Intn(10)))
	}
	return b.String()
}
