package frame

import (
	"image"
	"image/color"
)

// Image renders the frame in logical order. Unset pixels are black.
func (f *Frame) Image() *image.RGBA {
	g := f.Geometry
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Count(); i++ {
		p := f.data[headerSize+i*recordSize:]
		x, y := g.XY(i)
		img.SetRGBA(x, y, color.RGBA{R: p[3], G: p[2], B: p[1], A: 0xff})
	}
	return img
}
