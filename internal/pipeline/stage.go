package pipeline

import (
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/mapping"
)

type Kind int

const (
	KindPassthrough Kind = iota
	KindDraw
	KindMap
	KindMapper
	KindUnmapper
)

func (k Kind) String() string {
	switch k {
	case KindPassthrough:
		return "passthrough"
	case KindDraw:
		return "draw"
	case KindMap:
		return "map"
	case KindMapper:
		return "mapper"
	case KindUnmapper:
		return "unmapper"
	default:
		return "unknown"
	}
}

// Stage is one unit of per-tick processing. The set of stages is closed:
// Passthrough, Draw, Map, Mapper and Unmapper.
type Stage interface {
	Run(ctx *Context) error
	Kind() Kind
	validate() error
}

// DrawFunc performs side effects on the context, typically via ctx.Set.
type DrawFunc func(ctx *Context) error

// PixelView is what a MapFunc sees for one pixel.
type PixelView struct {
	*Context
	X, Y     int
	PixelNum int
	Val      frame.Pixel
}

// MapFunc returns a color and true to overwrite the pixel, or false to leave
// it alone.
type MapFunc func(px PixelView) (frame.Color, bool)

type Passthrough struct{}

func (Passthrough) Run(*Context) error { return nil }
func (Passthrough) Kind() Kind         { return KindPassthrough }
func (Passthrough) validate() error    { return nil }

type Draw struct {
	Fn DrawFunc
}

func (d Draw) Run(ctx *Context) error { return d.Fn(ctx) }
func (Draw) Kind() Kind               { return KindDraw }

func (d Draw) validate() error {
	if d.Fn == nil {
		return ErrNotAFunction
	}
	return nil
}

type Map struct {
	Fn MapFunc
}

// Run visits every pixel row by row.
func (m Map) Run(ctx *Context) error {
	if ctx.Frame == nil {
		return ErrNoFrame
	}
	w, h := ctx.Geometry.Width, ctx.Geometry.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			val, err := ctx.Frame.At(x, y)
			if err != nil {
				return err
			}
			c, ok := m.Fn(PixelView{Context: ctx, X: x, Y: y, PixelNum: y*w + x, Val: val})
			if !ok {
				continue
			}
			if err := ctx.Frame.Set(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (Map) Kind() Kind { return KindMap }

func (m Map) validate() error {
	if m.Fn == nil {
		return ErrNotAFunction
	}
	return nil
}

// Mapper replaces the current frame with its physical-order rendition. The
// layout's alternating state is rewound before every frame, so each frame
// maps the same way whatever the number of alternations per walk.
type Mapper struct {
	Layout mapping.Layout
}

func (m Mapper) Run(ctx *Context) error {
	if ctx.Frame == nil {
		return ErrNoFrame
	}
	m.Layout.Reset()
	out, err := mapping.Map(ctx.Frame, m.Layout)
	if err != nil {
		return err
	}
	ctx.Frame = out
	return nil
}

func (Mapper) Kind() Kind      { return KindMapper }
func (Mapper) validate() error { return nil }

// Unmapper replaces the current frame with its logical-order rendition. Like
// Mapper it rewinds the layout first.
type Unmapper struct {
	Layout mapping.Layout
}

func (u Unmapper) Run(ctx *Context) error {
	if ctx.Frame == nil {
		return ErrNoFrame
	}
	u.Layout.Reset()
	out, err := mapping.Unmap(ctx.Frame, u.Layout)
	if err != nil {
		return err
	}
	ctx.Frame = out
	return nil
}

func (Unmapper) Kind() Kind      { return KindUnmapper }
func (Unmapper) validate() error { return nil }
