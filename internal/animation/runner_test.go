package animation_test

import (
	"context"
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

type recorder struct {
	frames []*frame.Frame
	stats  []animation.Stats
}

func (r *recorder) OnFrame(f *frame.Frame, s animation.Stats) {
	r.frames = append(r.frames, f)
	r.stats = append(r.stats, s)
}

func emptyChain() *pipeline.Chain {
	c, err := pipeline.NewChain()
	Expect(err).NotTo(HaveOccurred())
	return c
}

func newRunner(cfg animation.Config, chain *pipeline.Chain) (*animation.Runner, *recorder) {
	r, err := animation.New(cfg, chain)
	Expect(err).NotTo(HaveOccurred())
	rec := &recorder{}
	r.AddObserver(rec)
	return r, rec
}

var _ = Describe("Runner", func() {
	It("rejects unusable configs", func() {
		for _, cfg := range []animation.Config{
			{Width: 0, Height: 4},
			{Width: 4, Height: 300},
			{Width: 4, Height: 4, FrameRate: -1},
			{Width: 4, Height: 4, FrameRate: math.NaN()},
			{Width: 4, Height: 4, FrameRate: math.Inf(1)},
			{Width: 4, Height: 4, FrameRate: 1e-300},
			{Width: 4, Height: 4, FrameRate: 1e12},
			{Width: 4, Height: 4, MaxFrames: -2},
		} {
			_, err := animation.New(cfg, emptyChain())
			Expect(err).To(MatchError(animation.ErrInvalidConfig))
		}

		_, err := animation.New(animation.DefaultConfig(), nil)
		Expect(err).To(MatchError(animation.ErrInvalidConfig))
	})

	It("numbers frames from zero in steps of one", func() {
		r, rec := newRunner(animation.Config{Width: 2, Height: 2, FrameRate: 500, MaxFrames: 10}, emptyChain())

		Expect(r.Run(context.Background())).To(Succeed())
		Expect(rec.stats).To(HaveLen(10))
		for i, s := range rec.stats {
			Expect(s.Num).To(Equal(i))
			Expect(rec.frames[i].Num).To(Equal(i))
			if i > 0 {
				Expect(s.Time).To(BeNumerically(">=", rec.stats[i-1].Time))
			}
		}
	})

	It("paces ticks at the configured frame rate", func() {
		const n = 12
		r, rec := newRunner(animation.Config{Width: 2, Height: 2, FrameRate: 30, MaxFrames: n}, emptyChain())

		Expect(r.Run(context.Background())).To(Succeed())
		Expect(rec.stats).To(HaveLen(n))

		span := rec.stats[n-1].Time - rec.stats[0].Time
		mean := span / time.Duration(n-1)
		Expect(mean).To(BeNumerically("~", 33*time.Millisecond, 8*time.Millisecond))
	})

	It("shifts frames into PrevFrame and stores the tick value", func() {
		var prev []*frame.Frame
		var ticks []any

		chain := emptyChain()
		Expect(chain.Draw(func(c *pipeline.Context) error {
			prev = append(prev, c.PrevFrame)
			ticks = append(ticks, c.Tick)
			return c.Set(0, 0, frame.RGB(uint8(c.Num), 0, 0))
		})).To(Succeed())

		cfg := animation.Config{
			Width: 1, Height: 1, FrameRate: 500, MaxFrames: 3,
			Tick: func(c *pipeline.Context) (any, error) { return c.Num * 10, nil },
		}
		r, rec := newRunner(cfg, chain)
		Expect(r.Run(context.Background())).To(Succeed())

		Expect(prev[0]).To(BeNil())
		Expect(prev[1]).To(BeIdenticalTo(rec.frames[0]))
		Expect(prev[2]).To(BeIdenticalTo(rec.frames[1]))
		Expect(ticks).To(Equal([]any{0, 10, 20}))

		p, _ := rec.frames[2].At(0, 0)
		Expect(p.R).To(Equal(uint8(2)))
	})

	It("defaults the tick value to the frame number", func() {
		r, _ := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 4}, emptyChain())
		Expect(r.Run(context.Background())).To(Succeed())
		Expect(r.Context().Tick).To(Equal(3))
	})

	It("applies math overrides", func() {
		m := pipeline.DefaultMath()
		m.Sin = func(float64) float64 { return 42 }
		var got float64

		chain := emptyChain()
		Expect(chain.Draw(func(c *pipeline.Context) error {
			got = c.Math.Sin(0)
			return nil
		})).To(Succeed())

		r, _ := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 1, Math: &m}, chain)
		Expect(r.Run(context.Background())).To(Succeed())
		Expect(got).To(Equal(42.0))
	})

	It("freezes the chain and refuses a second run", func() {
		chain := emptyChain()
		r, _ := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 1}, chain)
		Expect(r.Run(context.Background())).To(Succeed())
		Expect(chain.Frozen()).To(BeTrue())
		Expect(r.Run(context.Background())).To(MatchError(animation.ErrAlreadyRunning))
	})

	Context("when a tick fails", func() {
		boom := errors.New("boom")

		failing := func() *pipeline.Chain {
			chain := emptyChain()
			Expect(chain.Draw(func(c *pipeline.Context) error {
				if c.Num == 1 {
					return boom
				}
				return nil
			})).To(Succeed())
			return chain
		}

		It("halts by default", func() {
			r, rec := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 5}, failing())
			err := r.Run(context.Background())
			Expect(err).To(MatchError(boom))
			Expect(rec.stats).To(HaveLen(1))
		})

		It("drops the frame and continues under Skip", func() {
			cfg := animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 4, ErrorPolicy: animation.Skip}
			r, rec := newRunner(cfg, failing())
			Expect(r.Run(context.Background())).To(Succeed())

			nums := make([]int, 0, len(rec.stats))
			for _, s := range rec.stats {
				nums = append(nums, s.Num)
			}
			Expect(nums).To(Equal([]int{0, 2, 3}))
		})

		It("keeps the last rendered frame as PrevFrame after a drop", func() {
			var prev []*frame.Frame
			chain := emptyChain()
			Expect(chain.Draw(func(c *pipeline.Context) error {
				prev = append(prev, c.PrevFrame)
				if c.Num == 1 {
					return boom
				}
				return nil
			})).To(Succeed())

			cfg := animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 3, ErrorPolicy: animation.Skip}
			r, rec := newRunner(cfg, chain)
			Expect(r.Run(context.Background())).To(Succeed())

			Expect(prev).To(HaveLen(3))
			Expect(prev[2]).To(BeIdenticalTo(rec.frames[0]))
			Expect(prev[2].Num).To(Equal(0))
		})

		It("converts panics into errors", func() {
			chain := emptyChain()
			Expect(chain.Draw(func(*pipeline.Context) error { panic("kaboom") })).To(Succeed())

			r, _ := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 500, MaxFrames: 2}, chain)
			Expect(r.Run(context.Background())).To(MatchError(animation.ErrCallbackPanic))
		})

		It("reports tick function errors", func() {
			cfg := animation.Config{
				Width: 1, Height: 1, FrameRate: 500, MaxFrames: 2,
				Tick: func(*pipeline.Context) (any, error) { return nil, boom },
			}
			r, _ := newRunner(cfg, emptyChain())
			Expect(r.Run(context.Background())).To(MatchError(boom))
		})
	})

	Context("cancellation", func() {
		It("stops through the handle", func() {
			r, rec := newRunner(animation.Config{Width: 2, Height: 2, FrameRate: 100}, emptyChain())
			h := r.Start(context.Background())

			time.Sleep(60 * time.Millisecond)
			h.Stop()

			Eventually(h.Done(), time.Second).Should(BeClosed())
			Expect(h.Wait()).To(Succeed())
			Expect(len(rec.stats)).To(BeNumerically(">", 0))
		})

		It("returns the context error from Run", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
			defer cancel()

			r, _ := newRunner(animation.Config{Width: 1, Height: 1, FrameRate: 60}, emptyChain())
			Expect(r.Run(ctx)).To(MatchError(context.DeadlineExceeded))
		})

		It("does not tick when already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			r, rec := newRunner(animation.Config{Width: 1, Height: 1}, emptyChain())
			Expect(r.Run(ctx)).To(MatchError(context.Canceled))
			Expect(rec.stats).To(BeEmpty())
		})
	})
})

var _ = Describe("FrameLength", func() {
	It("converts rates into frame durations", func() {
		Expect(animation.FrameLength(50)).To(Equal(20 * time.Millisecond))
		Expect(animation.FrameLength(0.25)).To(Equal(4 * time.Second))
	})

	It("rejects rates without a usable frame", func() {
		for _, rate := range []float64{0, -30, math.NaN(), math.Inf(1), math.Inf(-1), 1e-300, 1e12} {
			_, err := animation.FrameLength(rate)
			Expect(err).To(MatchError(animation.ErrInvalidConfig), "rate %g", rate)
		}
	})
})

var _ = Describe("ParsePolicy", func() {
	It("parses known names", func() {
		Expect(animation.ParsePolicy("skip")).To(Equal(animation.Skip))
		Expect(animation.ParsePolicy("HALT")).To(Equal(animation.Halt))
		Expect(animation.ParsePolicy("")).To(Equal(animation.Halt))
	})

	It("rejects unknown names", func() {
		_, err := animation.ParsePolicy("retry")
		Expect(err).To(MatchError(animation.ErrUnknownPolicy))
	})
})
