package brushfire

import (
	"math"
	"sync"

	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/internal/parallel"
	"github.com/RLin8910/parallel-sdf/wavefront"
)

// computeMultiQueue runs the polar multi-queue propagation variant: cells
// are sharded across P priority queues by the polar sector of their
// position relative to the image center, and each propagation step picks
// the global minimum across all queue heads before popping and relaxing
// it. The head-selection step is the design's single serialization point;
// for small P it runs on one goroutine via a linear scan of the P heads
// rather than a full auxiliary heap, with an optional parallel peek phase
// before the scan when the caller asks for it.
func computeMultiQueue(img *grid.BooleanGrid, invert bool, cfg Options) (*grid.ScalarGrid, error) {
	w, h := img.Width(), img.Height()
	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}

	sectors := parallel.Workers(cfg.ThreadCount)
	if sectors < 1 {
		sectors = 1
	}
	queues := make([]*wavefront.Queue, sectors)
	for i := range queues {
		queues[i] = wavefront.NewQueue()
	}
	cx, cy := float64(w)/2, float64(h)/2

	closed := make([]bool, w*h)

	seed(img, invert, func(n wavefront.Node) {
		s := sectorOf(n.Cell.X, n.Cell.Y, cx, cy, sectors)
		queues[s].Push(n)
	})

	heads := make([]wavefront.Node, sectors)
	present := make([]bool, sectors)

	for {
		peekAll(queues, heads, present, cfg.Parallel)

		best := -1
		for i := 0; i < sectors; i++ {
			if !present[i] {
				continue
			}
			if best == -1 || heads[i].Priority() < heads[best].Priority() {
				best = i
			}
		}
		if best == -1 {
			break
		}

		n, _ := queues[best].Pop()
		idx := n.Cell.Y*w + n.Cell.X
		if closed[idx] {
			continue
		}
		closed[idx] = true
		out.Set(n.Cell.X, n.Cell.Y, n.Priority())

		relax(img, invert, closed, n, func(next wavefront.Node) {
			s := sectorOf(next.Cell.X, next.Cell.Y, cx, cy, sectors)
			queues[s].Push(next)
		})
	}

	return out, nil
}

// peekAll fills heads[i]/present[i] with the current head of queues[i],
// optionally fanning the peeks out across goroutines. Peeks are disjoint
// per-queue, so no locking is needed even when run concurrently.
func peekAll(queues []*wavefront.Queue, heads []wavefront.Node, present []bool, useParallel bool) {
	if !useParallel || len(queues) < 2 {
		for i, q := range queues {
			heads[i], present[i] = q.Peek()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(queues))
	for i, q := range queues {
		go func(i int, q *wavefront.Queue) {
			defer wg.Done()
			heads[i], present[i] = q.Peek()
		}(i, q)
	}
	wg.Wait()
}

// sectorOf returns the polar sector index in [0, numSectors) of cell
// (x, y) relative to image center (cx, cy). The angle is computed from
// coordinates normalized by the center rather than raw pixel offsets, so
// that non-square images are split into sectors of equal image fraction
// instead of equal angle.
func sectorOf(x, y int, cx, cy float64, numSectors int) int {
	u := float64(x)/cx - 1
	v := float64(y)/cy - 1
	angle := math.Atan2(v, u) // in (-π, π]

	frac := (angle + math.Pi) / (2 * math.Pi) // in [0, 1]; 1 is clamped below
	sector := int(frac * float64(numSectors))
	if sector < 0 {
		sector = 0
	}
	if sector >= numSectors {
		sector = numSectors - 1
	}
	return sector
}
