package effects

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

const (
	sparkleDecay = 0.8
	// new sparks per tick per 64 pixels
	sparkleDensity = 2
)

type sparkle struct {
	rng *rand.Rand
	// last logical frame drawn; PrevFrame may already be in wiring order
	last *frame.Frame
}

// Sparkle lights random pixels in random hues and lets earlier sparks fade
// out. The tick value is the list of new spark indices.
func Sparkle(seed uint64) Effect {
	s := &sparkle{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	return Effect{
		Name:        "sparkle",
		Description: "random sparks fading out",
		Tick:        s.tick,
		Stages: []pipeline.Stage{
			pipeline.Draw{Fn: s.fade},
			pipeline.Draw{Fn: s.draw},
		},
	}
}

func (s *sparkle) tick(ctx *pipeline.Context) (any, error) {
	n := ctx.Count()*sparkleDensity/64 + 1
	sparks := make([]int, n)
	for i := range sparks {
		sparks[i] = s.rng.IntN(ctx.Count())
	}
	return sparks, nil
}

func (s *sparkle) draw(ctx *pipeline.Context) error {
	sparks, _ := ctx.Tick.([]int)
	for _, i := range sparks {
		x, y := ctx.Geometry.XY(i)
		col := frame.FromColorful(colorful.Hsv(s.rng.Float64()*360, 0.6, 1))
		if err := ctx.Set(x, y, col); err != nil {
			return err
		}
	}
	s.last = ctx.Frame.Clone()
	return nil
}

// fade copies the last drawn frame into the current one at reduced
// brightness.
func (s *sparkle) fade(ctx *pipeline.Context) error {
	if s.last == nil {
		return nil
	}
	for i := 0; i < ctx.Count(); i++ {
		px, err := s.last.AtIndex(i)
		if err != nil {
			return err
		}
		if !px.IsSet() {
			continue
		}
		col := frame.RGB(
			uint8(float64(px.R)*sparkleDecay),
			uint8(float64(px.G)*sparkleDecay),
			uint8(float64(px.B)*sparkleDecay),
		)
		if err := ctx.Frame.SetIndex(i, col); err != nil {
			return err
		}
	}
	return nil
}
