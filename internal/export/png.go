package export

import (
	"image/png"
	"io"

	"github.com/everyside/vixel/internal/frame"
)

func PNG(w io.Writer, f *frame.Frame, scale int) error {
	img, err := Scaled(f, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
