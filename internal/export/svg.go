package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/everyside/vixel/internal/frame"
)

// SVG draws f as a grid of round LEDs. Unset pixels are drawn as dark,
// unlit LEDs.
func SVG(w io.Writer, f *frame.Frame, scale int) error {
	if scale < 1 {
		return ErrInvalidScale
	}
	g := f.Geometry
	width := g.Width * scale
	height := g.Height * scale
	radius := float64(scale) * 0.4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i := 0; i < g.Count(); i++ {
		px, err := f.AtIndex(i)
		if err != nil {
			return err
		}
		fill := "#1a1a1a"
		if px.IsSet() {
			fill = px.Hex()
		}
		x, y := g.XY(i)
		cx := float64(x*scale) + float64(scale)/2
		cy := float64(y*scale) + float64(scale)/2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, radius, fill))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
