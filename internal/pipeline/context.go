package pipeline

import (
	"math"
	"time"

	"github.com/everyside/vixel/internal/frame"
)

// Math holds trigonometric helpers handed to user callbacks. Overriding
// them changes nothing in the core.
type Math struct {
	Sin, Cos, Tan func(float64) float64
}

func DefaultMath() Math {
	return Math{Sin: math.Sin, Cos: math.Cos, Tan: math.Tan}
}

// Context is the mutable per-animation state shared by every stage. One
// Context lives for the whole run; each tick replaces Frame, PrevFrame, Num,
// Time and Tick in place.
type Context struct {
	Geometry  frame.Geometry
	FrameRate float64
	Math      Math

	Frame     *frame.Frame
	PrevFrame *frame.Frame
	Num       int
	Time      time.Duration
	Tick      any
}

func NewContext(g frame.Geometry, frameRate float64) *Context {
	return &Context{
		Geometry:  g,
		FrameRate: frameRate,
		Math:      DefaultMath(),
	}
}

// Set writes c to the current frame.
func (c *Context) Set(x, y int, col frame.Color) error {
	if c.Frame == nil {
		return ErrNoFrame
	}
	return c.Frame.Set(x, y, col)
}

func (c *Context) Width() int  { return c.Geometry.Width }
func (c *Context) Height() int { return c.Geometry.Height }
func (c *Context) Count() int  { return c.Geometry.Count() }

// Advance starts a new tick: the current frame becomes PrevFrame and a
// fresh zero-filled frame takes its place.
func (c *Context) Advance(num int, t time.Duration) {
	c.PrevFrame = c.Frame
	c.Num = num
	c.Time = t
	c.Frame = frame.New(c.Geometry, num, t)
}

// Snapshot returns a shallow copy; frames are shared, not cloned.
func (c *Context) Snapshot() Context {
	return *c
}
