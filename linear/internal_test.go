package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RLin8910/parallel-sdf/grid"
)

func TestIsSource(t *testing.T) {
	assert.True(t, isSource(true, false))
	assert.False(t, isSource(false, false))
	assert.True(t, isSource(false, true))
	assert.False(t, isSource(true, true))
}

func TestStepPass_SingleSourceColumn(t *testing.T) {
	img, err := grid.BooleanGridFromRows([][]bool{
		{false},
		{false},
		{true},
		{false},
		{false},
	})
	if err != nil {
		t.Fatal(err)
	}

	w, h := img.Width(), img.Height()
	g := make([]int, w*h)
	stepPass(img, false, g, 0)

	want := []int{2, 1, 0, 1, 2}
	for y, w := range want {
		assert.Equalf(t, w, g[y*img.Width()], "row %d", y)
	}
}

func TestStepPass_NoSourceUsesSentinel(t *testing.T) {
	img, err := grid.BooleanGridFromRows([][]bool{
		{false},
		{false},
		{false},
	})
	if err != nil {
		t.Fatal(err)
	}

	g := make([]int, img.Width()*img.Height())
	stepPass(img, false, g, 0)

	// With no source in the column, the forward sweep starts at the
	// sentinel and adds one step per row; the backward sweep never lowers it.
	sentinel := stepSentinel(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		assert.Equal(t, sentinel+y, g[y*img.Width()])
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(7, 3))
	assert.Equal(t, -3, floorDiv(-7, 3))
	assert.Equal(t, -3, floorDiv(7, -3))
	assert.Equal(t, 2, floorDiv(-7, -3))
	assert.Equal(t, 0, floorDiv(0, 5))
}
