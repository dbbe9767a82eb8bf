package frame

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel is a bit mask selecting which components of a Color are present.
type Channel uint8

const (
	Red Channel = 1 << iota
	Green
	Blue

	NoChannels  Channel = 0
	AllChannels         = Red | Green | Blue
)

// Color is a possibly partial RGB value. Components whose bit is missing
// from Channels are left untouched when the color is written to a frame.
// The zero Color carries no channels.
type Color struct {
	R, G, B  uint8
	Channels Channel
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Channels: AllChannels}
}

// Only builds a Color that carries just the channels in mask.
func Only(mask Channel, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Channels: mask & AllChannels}
}

func (c Color) Has(ch Channel) bool { return c.Channels&ch == ch }

// FromColorful clamps a colorful.Color into a full RGB Color.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Colorful converts to a colorful.Color; absent channels read as zero.
func (c Color) Colorful() colorful.Color {
	var r, g, b uint8
	if c.Has(Red) {
		r = c.R
	}
	if c.Has(Green) {
		g = c.G
	}
	if c.Has(Blue) {
		b = c.B
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex parses "#rrggbb" into a full RGB Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("frame: parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// Marker is written to the first byte of a pixel record whenever it is set.
const Marker = 0xE1

// Pixel is a pixel record read back from a frame. A carries the marker byte.
type Pixel struct {
	R, G, B, A uint8
}

func (p Pixel) IsSet() bool { return p.A == Marker }

func (p Pixel) Color() Color { return RGB(p.R, p.G, p.B) }

func (p Pixel) Colorful() colorful.Color { return p.Color().Colorful() }

func (p Pixel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}
