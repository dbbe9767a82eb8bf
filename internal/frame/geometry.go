package frame

import "fmt"

// MaxDimension is the largest width or height the one-byte header can carry.
const MaxDimension = 255

// Geometry is the immutable size of a display.
type Geometry struct {
	Width  int
	Height int
}

func NewGeometry(width, height int) (Geometry, error) {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	return Geometry{Width: width, Height: height}, nil
}

func (g Geometry) Count() int { return g.Width * g.Height }

// Index returns the row-major index of (x, y).
func (g Geometry) Index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, x, y, g.Width, g.Height)
	}
	return y*g.Width + x, nil
}

// XY is the inverse of Index.
func (g Geometry) XY(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
