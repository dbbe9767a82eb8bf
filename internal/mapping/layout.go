package mapping

import (
	"fmt"
	"iter"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/traverse"
)

// Region binds an order to a sub-rectangle of the display.
type Region struct {
	Origin        traverse.Coord
	Width, Height int
	Order         traverse.Order
}

func (r Region) Rect() traverse.Rect {
	return traverse.Rect{Origin: r.Origin, Width: r.Width, Height: r.Height}
}

// Layout is an ordered list of regions; their walks concatenated form the
// physical wiring path.
type Layout []Region

// Walk yields the concatenated path. Each call invokes every region's order
// once, advancing any alternating state.
func (l Layout) Walk() iter.Seq[traverse.Coord] {
	return func(yield func(traverse.Coord) bool) {
		for _, r := range l {
			for c := range r.Order.Walk(r.Rect(), traverse.Partial{}) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Reset rewinds stateful orders in every region.
func (l Layout) Reset() {
	for _, r := range l {
		traverse.Reset(r.Order)
	}
}

// path walks the layout once, yielding (physical index, logical index) and
// rejecting out-of-bounds, repeated or missing coordinates.
func (l Layout) path(g frame.Geometry, visit func(phys, logical int) error) error {
	seen := make([]bool, g.Count())
	i := 0
	for c := range l.Walk() {
		logical, err := g.Index(c.X, c.Y)
		if err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrMalformedTraversal, i, err)
		}
		if seen[logical] {
			return fmt.Errorf("%w: step %d revisits (%d,%d)", ErrMalformedTraversal, i, c.X, c.Y)
		}
		seen[logical] = true
		if err := visit(i, logical); err != nil {
			return err
		}
		i++
	}
	if i != g.Count() {
		return fmt.Errorf("%w: visited %d of %d pixels", ErrMalformedTraversal, i, g.Count())
	}
	return nil
}

// Indices returns, for every logical pixel, its physical position.
func (l Layout) Indices(g frame.Geometry) ([]int, error) {
	out := make([]int, g.Count())
	err := l.path(g, func(phys, logical int) error {
		out[logical] = phys
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Validate walks the layout once against g.
func (l Layout) Validate(g frame.Geometry) error {
	return l.path(g, func(int, int) error { return nil })
}
