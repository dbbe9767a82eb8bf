package effects

import (
	"github.com/tanema/gween/ease"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

var DefaultChaseColor = frame.RGB(0x20, 0xa0, 0xff)

// Chase runs a head with a fading tail through the logical pixel order, one
// pixel per tick. The tick value is the head index.
func Chase(col frame.Color, tail int) Effect {
	if tail < 1 {
		tail = 1
	}
	return Effect{
		Name:        "chase",
		Description: "a dot with a tail running through every pixel",
		Tick: func(ctx *pipeline.Context) (any, error) {
			return ctx.Num % ctx.Count(), nil
		},
		Stages: []pipeline.Stage{
			pipeline.Draw{Fn: func(ctx *pipeline.Context) error {
				head, _ := ctx.Tick.(int)
				return drawChase(ctx, head, col, tail)
			}},
		},
	}
}

func drawChase(ctx *pipeline.Context, head int, col frame.Color, tail int) error {
	n := ctx.Count()
	for k := 0; k <= tail && k < n; k++ {
		// brightness eases out from 1 at the head to 0 past the tail end
		level := 1 - ease.OutQuad(float32(k), 0, 1, float32(tail+1))
		i := ((head-k)%n + n) % n
		c := frame.RGB(
			uint8(float32(col.R)*level),
			uint8(float32(col.G)*level),
			uint8(float32(col.B)*level),
		)
		if err := ctx.Frame.SetIndex(i, c); err != nil {
			return err
		}
	}
	return nil
}
