package effects

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

// Plasma is the classic sum-of-sines field. It draws through a Map stage and
// uses the context's Math, so it follows any trig override.
func Plasma() Effect {
	return Effect{
		Name:        "plasma",
		Description: "interfering sine waves",
		Tick: func(ctx *pipeline.Context) (any, error) {
			return ctx.Time.Seconds(), nil
		},
		Stages: []pipeline.Stage{
			pipeline.Map{Fn: shadePlasma},
		},
	}
}

func shadePlasma(px pipeline.PixelView) (frame.Color, bool) {
	t, _ := px.Tick.(float64)
	m := px.Math
	x := float64(px.X) / float64(px.Width())
	y := float64(px.Y) / float64(px.Height())

	v := m.Sin(x*10+t) +
		m.Sin(10*(x*m.Sin(t/2)+y*m.Cos(t/3))+t) +
		m.Sin(math.Hypot(x-0.5, y-0.5)*12-t*2)
	// v is in [-3, 3]
	hue := (v + 3) / 6 * 360
	return frame.FromColorful(colorful.Hsv(math.Mod(hue, 360), 1, 1)), true
}
