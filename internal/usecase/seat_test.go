package usecase

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"railway-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seatLabelRe = regexp.MustCompile(`^(SLEEPER|3AC|2AC|1AC)-(\d+)$`)

func TestSeatAllocator_LabelFormat(t *testing.T) {
	seats := NewSeatAllocator(rand.New(rand.NewSource(7)), 72)

	for _, class := range []entity.TravelClass{
		entity.ClassSleeper, entity.ClassThirdAC, entity.ClassSecondAC, entity.ClassFirstAC,
	} {
		for i := 0; i < 200; i++ {
			label := seats.Allocate(class)

			m := seatLabelRe.FindStringSubmatch(label)
			require.NotNil(t, m, "label %q", label)
			assert.Equal(t, strings.ToUpper(string(class)), m[1])

			slot, err := strconv.Atoi(m[2])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, slot, 1)
			assert.LessOrEqual(t, slot, 72)
		}
	}
}

func TestSeatAllocator_DefaultsCoachSize(t *testing.T) {
	seats := NewSeatAllocator(rand.New(rand.NewSource(7)), 0)

	label := seats.Allocate(entity.ClassThirdAC)
	assert.Regexp(t, `^3AC-\d+$`, label)
}
