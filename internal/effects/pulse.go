package effects

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

var DefaultPulseColor = frame.RGB(0xff, 0x40, 0x10)

type pulse struct {
	base   colorful.Color
	period float32
	tween  *gween.Tween
	rising bool
}

// Pulse fades the whole matrix between black and col, one leg per period.
// The tick value is the brightness in [0, 1].
func Pulse(col frame.Color, period time.Duration) Effect {
	p := &pulse{
		base:   col.Colorful(),
		period: float32(period.Seconds()),
		rising: true,
	}
	p.tween = gween.New(0, 1, p.period, ease.InOutSine)

	return Effect{
		Name:        "pulse",
		Description: "whole matrix breathing in and out",
		Tick:        p.tick,
		Stages: []pipeline.Stage{
			pipeline.Map{Fn: p.shade},
		},
	}
}

func (p *pulse) tick(ctx *pipeline.Context) (any, error) {
	if ctx.Num == 0 {
		return float64(0), nil
	}
	val, done := p.tween.Update(float32(1 / ctx.FrameRate))
	if done {
		if p.rising {
			p.tween = gween.New(1, 0, p.period, ease.InOutSine)
		} else {
			p.tween = gween.New(0, 1, p.period, ease.InOutSine)
		}
		p.rising = !p.rising
	}
	return min(max(float64(val), 0), 1), nil
}

func (p *pulse) shade(px pipeline.PixelView) (frame.Color, bool) {
	level, _ := px.Tick.(float64)
	black := colorful.Color{}
	return frame.FromColorful(black.BlendRgb(p.base, level)), true
}
