package brushfire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSource(t *testing.T) {
	assert.True(t, isSource(true, false))
	assert.False(t, isSource(false, false))
	assert.True(t, isSource(false, true))
	assert.False(t, isSource(true, true))
}

func TestSectorOf_QuadrantsWithFourSectors(t *testing.T) {
	// Center of a 10x10 grid is (5,5). A cell to the right of center and
	// on the same row falls at angle 0.
	right := sectorOf(9, 5, 5, 5, 4)
	left := sectorOf(0, 5, 5, 5, 4)
	assert.NotEqual(t, right, left)
}

func TestSectorOf_AlwaysInRange(t *testing.T) {
	const sectors = 6
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			s := sectorOf(x, y, 10, 10, sectors)
			assert.GreaterOrEqual(t, s, 0)
			assert.Less(t, s, sectors)
		}
	}
}
