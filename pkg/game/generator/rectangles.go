package generator

import (
	"math/rand"

	"mazegen/pkg/engine/world"
)

// PlacementOptions controls room rectangle placement
type PlacementOptions struct {
	MinSize    int     // Smallest side, odd and at least 3
	MaxSize    int     // Largest short side, odd
	Density    float64 // Stop once rooms cover this fraction of the bounds; 0 disables
	MaxRects   int
	RetryCount int // Rejected candidates tolerated before giving up
}

// MakeSeparateRectangles places up to opts.MaxRects rectangles inside bounds so
// that no two of them overlap. Rectangles have odd sizes and odd offsets from
// the bounds origin, so they line up with the lattice FillWithMaze carves on,
// and there is always at least one wall between two of them.
//
// The short side is drawn from [min, mid] and one random side is stretched by
// a draw from [mid, max], which keeps most rooms away from the maximum area.
// The result is shuffled so that the placement order, in which big rooms tend
// to come first, does not leak to callers.
func MakeSeparateRectangles(bounds world.Rectangle, opts PlacementOptions, rng *rand.Rand) []world.Rectangle {
	// Everything is sampled on the half-resolution lattice of odd cells
	halfH := (bounds.Size.Height - 1) / 2
	halfW := (bounds.Size.Width - 1) / 2
	lo := (opts.MinSize - 1) / 2
	hi := (opts.MaxSize - 1) / 2
	mid := (lo + hi) / 2

	target := opts.Density * float64(bounds.Area())
	covered := 0

	var rects []world.Rectangle
	for retries := 0; retries < opts.RetryCount && len(rects) < opts.MaxRects; {
		if opts.Density > 0 && float64(covered) >= target {
			break
		}

		h := uniform(rng, lo, mid)
		w := uniform(rng, lo, mid)
		extra := uniform(rng, mid, hi) - mid
		if rng.Intn(2) == 0 {
			h += extra
		} else {
			w += extra
		}
		if h >= halfH || w >= halfW {
			retries++
			continue
		}

		row := rng.Intn(halfH - h)
		col := rng.Intn(halfW - w)
		rect := world.Rect(bounds.Pos.Row+row*2+1, bounds.Pos.Col+col*2+1, h*2+1, w*2+1)
		if !separateFromAll(rect, rects) {
			retries++
			continue
		}
		rects = append(rects, rect)
		covered += rect.Area()
	}

	rng.Shuffle(len(rects), func(i, j int) {
		rects[i], rects[j] = rects[j], rects[i]
	})
	return rects
}

func separateFromAll(rect world.Rectangle, others []world.Rectangle) bool {
	for _, o := range others {
		if !world.IsSeparate(rect, o) {
			return false
		}
	}
	return true
}

// uniform returns an integer drawn uniformly from [lo, hi]
func uniform(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
