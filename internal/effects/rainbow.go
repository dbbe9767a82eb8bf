package effects

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

// degrees of hue rotation per second
const rainbowSpeed = 90.0

// Rainbow sweeps a diagonal hue gradient across the matrix.
func Rainbow() Effect {
	return Effect{
		Name:        "rainbow",
		Description: "diagonal hue gradient rotating over time",
		Tick: func(ctx *pipeline.Context) (any, error) {
			return math.Mod(ctx.Time.Seconds()*rainbowSpeed, 360), nil
		},
		Stages: []pipeline.Stage{
			pipeline.Draw{Fn: drawRainbow},
		},
	}
}

func drawRainbow(ctx *pipeline.Context) error {
	offset, _ := ctx.Tick.(float64)
	span := float64(ctx.Width() + ctx.Height() - 1)
	for y := 0; y < ctx.Height(); y++ {
		for x := 0; x < ctx.Width(); x++ {
			hue := math.Mod(offset+float64(x+y)*360/span, 360)
			if err := ctx.Set(x, y, frame.FromColorful(colorful.Hsv(hue, 1, 1))); err != nil {
				return err
			}
		}
	}
	return nil
}
