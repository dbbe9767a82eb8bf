package pipeline_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/mapping"
	"github.com/everyside/vixel/internal/pipeline"
	"github.com/everyside/vixel/internal/traverse"
)

func newContext(w, h int) *pipeline.Context {
	g, err := frame.NewGeometry(w, h)
	Expect(err).NotTo(HaveOccurred())
	ctx := pipeline.NewContext(g, 30)
	ctx.Advance(0, 0)
	return ctx
}

var _ = Describe("Chain", func() {
	var (
		chain *pipeline.Chain
		ctx   *pipeline.Context
	)

	BeforeEach(func() {
		var err error
		chain, err = pipeline.NewChain()
		Expect(err).NotTo(HaveOccurred())
		ctx = newContext(3, 2)
	})

	It("runs stages in registration order", func() {
		var calls []string

		Expect(chain.Draw(func(*pipeline.Context) error {
			calls = append(calls, "a")
			return nil
		})).To(Succeed())
		Expect(chain.Map(func(px pipeline.PixelView) (frame.Color, bool) {
			if px.PixelNum == 0 {
				calls = append(calls, "b")
			}
			return frame.Color{}, false
		})).To(Succeed())
		Expect(chain.Draw(func(*pipeline.Context) error {
			calls = append(calls, "c")
			return nil
		})).To(Succeed())

		for i := 0; i < 3; i++ {
			_, err := chain.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(calls).To(Equal([]string{"a", "b", "c", "a", "b", "c", "a", "b", "c"}))
	})

	It("rejects a nil map function immediately", func() {
		err := chain.Map(nil)
		Expect(err).To(MatchError(pipeline.ErrNotAFunction))
		Expect(chain.Len()).To(Equal(0))
	})

	It("rejects nil stages and draw functions", func() {
		Expect(chain.Then(nil)).To(MatchError(pipeline.ErrNotAFunction))
		Expect(chain.Draw(nil)).To(MatchError(pipeline.ErrNotAFunction))
		_, err := pipeline.NewChain(pipeline.Passthrough{}, pipeline.Map{})
		Expect(err).To(MatchError(pipeline.ErrNotAFunction))
	})

	It("refuses appends once frozen", func() {
		chain.Freeze()
		Expect(chain.Then(pipeline.Passthrough{})).To(MatchError(pipeline.ErrFrozen))
	})

	It("returns a snapshot of the context after the last stage", func() {
		Expect(chain.Draw(func(c *pipeline.Context) error {
			c.Tick = "drawn"
			return c.Set(1, 1, frame.RGB(1, 2, 3))
		})).To(Succeed())

		snap, err := chain.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Tick).To(Equal("drawn"))
		Expect(snap.Frame).To(BeIdenticalTo(ctx.Frame))

		ctx.Tick = "later"
		Expect(snap.Tick).To(Equal("drawn"))
	})

	It("stops at the first failing stage and reports its position", func() {
		boom := errors.New("boom")
		ran := false

		Expect(chain.Then(pipeline.Passthrough{})).To(Succeed())
		Expect(chain.Draw(func(*pipeline.Context) error { return boom })).To(Succeed())
		Expect(chain.Draw(func(*pipeline.Context) error {
			ran = true
			return nil
		})).To(Succeed())

		_, err := chain.Run(ctx)
		Expect(err).To(MatchError(boom))

		var stageErr *pipeline.StageError
		Expect(errors.As(err, &stageErr)).To(BeTrue())
		Expect(stageErr.Index).To(Equal(1))
		Expect(stageErr.Kind).To(Equal(pipeline.KindDraw))
		Expect(ran).To(BeFalse())
	})

	It("is a no-op when empty", func() {
		before := ctx.Frame.Clone()
		_, err := chain.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ctx.Frame.Equal(before)).To(BeTrue())
	})
})

var _ = Describe("Map stage", func() {
	It("visits every pixel row by row with its linear number", func() {
		ctx := newContext(3, 2)
		var seen [][3]int

		stage := pipeline.Map{Fn: func(px pipeline.PixelView) (frame.Color, bool) {
			seen = append(seen, [3]int{px.X, px.Y, px.PixelNum})
			return frame.Color{}, false
		}}
		Expect(stage.Run(ctx)).To(Succeed())
		Expect(seen).To(Equal([][3]int{
			{0, 0, 0}, {1, 0, 1}, {2, 0, 2},
			{0, 1, 3}, {1, 1, 4}, {2, 1, 5},
		}))
	})

	It("writes back only colors it reports", func() {
		ctx := newContext(2, 2)
		stage := pipeline.Map{Fn: func(px pipeline.PixelView) (frame.Color, bool) {
			if px.X == px.Y {
				return frame.RGB(uint8(px.PixelNum), 0, 0), true
			}
			return frame.Color{}, false
		}}
		Expect(stage.Run(ctx)).To(Succeed())

		p, _ := ctx.Frame.At(1, 1)
		Expect(p.IsSet()).To(BeTrue())
		Expect(p.R).To(Equal(uint8(3)))

		q, _ := ctx.Frame.At(1, 0)
		Expect(q.IsSet()).To(BeFalse())
	})

	It("sees the current pixel value", func() {
		ctx := newContext(2, 1)
		Expect(ctx.Set(1, 0, frame.RGB(10, 20, 30))).To(Succeed())

		stage := pipeline.Map{Fn: func(px pipeline.PixelView) (frame.Color, bool) {
			if !px.Val.IsSet() {
				return frame.Color{}, false
			}
			return frame.RGB(px.Val.R*2, px.Val.G, px.Val.B), true
		}}
		Expect(stage.Run(ctx)).To(Succeed())

		p, _ := ctx.Frame.At(1, 0)
		Expect(p.R).To(Equal(uint8(20)))
	})
})

var _ = Describe("Mapper and Unmapper stages", func() {
	layout := func() mapping.Layout {
		return mapping.Layout{{
			Width: 3, Height: 2,
			Order: traverse.TopToBottom(traverse.Alternating(traverse.LeftToRight(nil), traverse.RightToLeft(nil))),
		}}
	}

	It("replaces the context frame without touching the original", func() {
		ctx := newContext(3, 2)
		Expect(ctx.Set(0, 1, frame.RGB(7, 7, 7))).To(Succeed())
		original := ctx.Frame

		Expect(pipeline.Mapper{Layout: layout()}.Run(ctx)).To(Succeed())
		Expect(ctx.Frame).NotTo(BeIdenticalTo(original))

		p, _ := ctx.Frame.AtIndex(5)
		Expect(p.R).To(Equal(uint8(7)))

		q, _ := original.At(0, 1)
		Expect(q.R).To(Equal(uint8(7)))
	})

	It("round trips through a chain", func() {
		ctx := newContext(3, 2)
		for i := 0; i < 6; i++ {
			Expect(ctx.Frame.SetIndex(i, frame.RGB(uint8(i*10), 0, 0))).To(Succeed())
		}
		before := ctx.Frame.Clone()

		chain, err := pipeline.NewChain(pipeline.Mapper{Layout: layout()}, pipeline.Unmapper{Layout: layout()})
		Expect(err).NotTo(HaveOccurred())

		_, err = chain.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ctx.Frame.Equal(before)).To(BeTrue())
	})

	It("maps every frame the same way when a walk flips an odd number of times", func() {
		odd := mapping.Layout{{
			Width: 2, Height: 3,
			Order: traverse.TopToBottom(traverse.Alternating(traverse.LeftToRight(nil), traverse.RightToLeft(nil))),
		}}
		stage := pipeline.Mapper{Layout: odd}

		var outputs []*frame.Frame
		for n := 0; n < 2; n++ {
			ctx := newContext(2, 3)
			Expect(ctx.Set(1, 1, frame.RGB(9, 9, 9))).To(Succeed())
			Expect(stage.Run(ctx)).To(Succeed())
			outputs = append(outputs, ctx.Frame)
		}
		Expect(outputs[0].Equal(outputs[1])).To(BeTrue())

		// row 1 runs right to left, so (1,1) is the first pixel of that row
		p, _ := outputs[0].AtIndex(2)
		Expect(p.R).To(Equal(uint8(9)))
	})

	It("surfaces malformed layouts as stage errors", func() {
		ctx := newContext(3, 2)
		chain, err := pipeline.NewChain(pipeline.Mapper{Layout: mapping.Layout{{Width: 3, Height: 1, Order: traverse.LeftToRight(nil)}}})
		Expect(err).NotTo(HaveOccurred())

		_, err = chain.Run(ctx)
		Expect(err).To(MatchError(mapping.ErrMalformedTraversal))
	})
})

var _ = Describe("Context", func() {
	It("shifts the current frame into PrevFrame on Advance", func() {
		ctx := newContext(2, 2)
		first := ctx.Frame

		ctx.Advance(1, 0)
		Expect(ctx.PrevFrame).To(BeIdenticalTo(first))
		Expect(ctx.Frame).NotTo(BeIdenticalTo(first))
		Expect(ctx.Num).To(Equal(1))
		Expect(ctx.Frame.Num).To(Equal(1))
	})

	It("reports a missing frame", func() {
		g, _ := frame.NewGeometry(1, 1)
		ctx := pipeline.NewContext(g, 30)
		Expect(ctx.Set(0, 0, frame.RGB(1, 1, 1))).To(MatchError(pipeline.ErrNoFrame))
	})
})
