package mapping

import (
	"github.com/everyside/vixel/internal/frame"
)

// Map reorders src from logical row-major order into the physical order of
// l. Output pixel i holds the source pixel at the i-th coordinate of the
// walk. src is not modified.
//
// Records are copied whole, marker byte included, so Unmap(Map(f)) is
// byte-identical to f. A pixel that was never set keeps its zero marker in
// the output rather than being stamped with frame.Marker.
func Map(src *frame.Frame, l Layout) (*frame.Frame, error) {
	out := src.Clone()
	err := l.path(src.Geometry, func(phys, logical int) error {
		return out.CopyPixel(phys, src, logical)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unmap is the inverse of Map: it reads src in physical order and writes
// each pixel back to its logical coordinate.
func Unmap(src *frame.Frame, l Layout) (*frame.Frame, error) {
	out := src.Clone()
	err := l.path(src.Geometry, func(phys, logical int) error {
		return out.CopyPixel(logical, src, phys)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
