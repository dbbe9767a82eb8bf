package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/everyside/vixel/internal/frame"
)

// GIF writes frames as a looping animation at frameRate. GIF delays are in
// hundredths of a second, so rates above 100fps play at 100fps.
func GIF(w io.Writer, frames []*frame.Frame, frameRate float64, scale int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	delay := 1
	if frameRate > 0 {
		delay = max(1, int(math.Round(100/frameRate)))
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		img, err := Scaled(f, scale)
		if err != nil {
			return err
		}
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		xdraw.Draw(pal, pal.Bounds(), img, image.Point{}, xdraw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}
