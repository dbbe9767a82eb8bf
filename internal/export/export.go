// Package export renders frames to image files.
package export

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/everyside/vixel/internal/frame"
)

const DefaultScale = 16

var (
	ErrNoFrames     = errors.New("export: no frames")
	ErrInvalidScale = errors.New("export: scale must be at least 1")
)

// Scaled renders f with every pixel blown up to a scale×scale block.
func Scaled(f *frame.Frame, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, ErrInvalidScale
	}
	src := f.Image()
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
