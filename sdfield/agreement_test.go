package sdfield_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RLin8910/parallel-sdf/brushfire"
	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/sdfield"
)

func randomGrid(t *testing.T, w, h int, seed int64) *grid.BooleanGrid {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	rows := make([][]bool, h)
	for y := range rows {
		row := make([]bool, w)
		for x := range row {
			row[x] = rnd.Intn(2) == 1
		}
		rows[y] = row
	}
	img, err := grid.BooleanGridFromRows(rows)
	require.NoError(t, err)
	return img
}

// TestAgreement_AllEnginesMatchBrute checks that every engine, on the same
// input, agrees with the brute-force oracle within tolerance. Kept small
// enough that the O(W^2H^2) oracle stays fast.
func TestAgreement_AllEnginesMatchBrute(t *testing.T) {
	seeds := []int64{1, 2, 3, 17, 101}
	sizes := [][2]int{{6, 6}, {9, 5}, {5, 9}, {12, 12}}

	for _, size := range sizes {
		for _, seed := range seeds {
			img := randomGrid(t, size[0], size[1], seed)

			want, err := sdfield.Compute(img, sdfield.WithEngine(sdfield.Brute))
			require.NoError(t, err)

			for _, engine := range []sdfield.Engine{sdfield.Brushfire, sdfield.Linear} {
				got, err := sdfield.Compute(img, sdfield.WithEngine(engine))
				require.NoError(t, err)

				for y := 0; y < img.Height(); y++ {
					for x := 0; x < img.Width(); x++ {
						assert.InDeltaf(t, want.At(x, y), got.At(x, y), 1e-6,
							"engine %v size %v seed %d cell (%d,%d)", engine, size, seed, x, y)
					}
				}
			}
		}
	}
}

// TestAgreement_ParallelMatchesSerial checks that enabling parallel
// dispatch never changes the result, across every engine, at the sdfield
// composition level (not just within a single engine's own tests).
func TestAgreement_ParallelMatchesSerial(t *testing.T) {
	img := randomGrid(t, 20, 16, 55)

	for _, engine := range []sdfield.Engine{sdfield.Brute, sdfield.Brushfire, sdfield.Linear} {
		serial, err := sdfield.Compute(img, sdfield.WithEngine(engine))
		require.NoError(t, err)

		par, err := sdfield.Compute(img,
			sdfield.WithEngine(engine),
			sdfield.WithParallel(true),
			sdfield.WithThreadCount(4),
		)
		require.NoError(t, err)

		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				assert.InDeltaf(t, serial.At(x, y), par.At(x, y), 1e-6,
					"engine %v cell (%d,%d)", engine, x, y)
			}
		}
	}
}

// TestAgreement_BrushfireVariantsMatch checks agreement at the
// composition level: SingleQueue and MultiQueuePolar must agree once folded
// into a signed field, not just as raw UDFs (already covered in
// brushfire's own tests).
func TestAgreement_BrushfireVariantsMatch(t *testing.T) {
	img := randomGrid(t, 18, 18, 8)

	single, err := sdfield.Compute(img,
		sdfield.WithEngine(sdfield.Brushfire),
		sdfield.WithBrushfireVariant(brushfire.SingleQueue),
	)
	require.NoError(t, err)

	multi, err := sdfield.Compute(img,
		sdfield.WithEngine(sdfield.Brushfire),
		sdfield.WithBrushfireVariant(brushfire.MultiQueuePolar),
		sdfield.WithThreadCount(4),
	)
	require.NoError(t, err)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			assert.InDeltaf(t, single.At(x, y), multi.At(x, y), 1e-6, "cell (%d,%d)", x, y)
		}
	}
}
