package imaging_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/imaging"
)

func TestVisualize_NilGrid(t *testing.T) {
	assert.Nil(t, imaging.Visualize(nil, 0))
}

func TestVisualize_BoundaryBandIsGreen(t *testing.T) {
	sdf, err := grid.NewScalarGrid(3, 1)
	require.NoError(t, err)
	sdf.Set(0, 0, 0.1)
	sdf.Set(1, 0, 5.0)
	sdf.Set(2, 0, -5.0)

	img := imaging.Visualize(sdf, 0.5)
	require.NotNil(t, img)

	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, img.NRGBAAt(0, 0))
	assert.NotEqual(t, uint8(255), img.NRGBAAt(1, 0).G)
	assert.NotEqual(t, uint8(255), img.NRGBAAt(2, 0).G)
}

func TestVisualize_InteriorVsExteriorHue(t *testing.T) {
	sdf, err := grid.NewScalarGrid(2, 1)
	require.NoError(t, err)
	sdf.Set(0, 0, -10) // interior, far from boundary
	sdf.Set(1, 0, 10)  // exterior, far from boundary

	img := imaging.Visualize(sdf, 1.0)
	require.NotNil(t, img)

	inside := img.NRGBAAt(0, 0)
	outside := img.NRGBAAt(1, 0)
	assert.Zero(t, inside.B, "interior stripes never use blue")
	assert.Zero(t, outside.R, "exterior stripes never use red")
}

func TestVisualize_DefaultBoundaryBand(t *testing.T) {
	sdf, err := grid.NewScalarGrid(1, 1)
	require.NoError(t, err)
	sdf.Set(0, 0, 0.6)

	img := imaging.Visualize(sdf, 0) // <= 0 selects DefaultBoundaryBand
	require.NotNil(t, img)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, img.NRGBAAt(0, 0))
}
