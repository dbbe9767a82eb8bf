package traverse

import (
	"fmt"
	"iter"
	"slices"
)

type Coord struct {
	X, Y int
}

// Partial is a coordinate with some axes still unbound.
type Partial struct {
	X, Y       int
	HasX, HasY bool
}

func (p Partial) WithX(x int) Partial {
	p.X, p.HasX = x, true
	return p
}

func (p Partial) WithY(y int) Partial {
	p.Y, p.HasY = y, true
	return p
}

// Complete resolves unbound axes to the origin of r.
func (p Partial) Complete(r Rect) Coord {
	c := r.Origin
	if p.HasX {
		c.X = p.X
	}
	if p.HasY {
		c.Y = p.Y
	}
	return c
}

// Rect is the sub-rectangle an order walks.
type Rect struct {
	Origin        Coord
	Width, Height int
}

func (r Rect) Count() int { return r.Width * r.Height }

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.Origin.X, r.Origin.Y)
}

// Order produces the coordinate path through a rectangle. The returned
// sequence is finite; call Walk again to restart it.
type Order interface {
	Walk(r Rect, p Partial) iter.Seq[Coord]
}

// OrderFunc adapts a function to Order.
type OrderFunc func(r Rect, p Partial) iter.Seq[Coord]

func (f OrderFunc) Walk(r Rect, p Partial) iter.Seq[Coord] { return f(r, p) }

func Ascending(offset, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := offset; i < offset+count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func Descending(offset, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := offset + count - 1; i >= offset; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

type axis int

const (
	axisX axis = iota
	axisY
)

// directional walks one axis and delegates each value to next, or yields
// completed coordinates when next is nil.
type directional struct {
	name    string
	axis    axis
	reverse bool
	next    Order
}

func (d *directional) values(r Rect) iter.Seq[int] {
	offset, count := r.Origin.X, r.Width
	if d.axis == axisY {
		offset, count = r.Origin.Y, r.Height
	}
	if d.reverse {
		return Descending(offset, count)
	}
	return Ascending(offset, count)
}

func (d *directional) bind(p Partial, v int) Partial {
	if d.axis == axisY {
		return p.WithY(v)
	}
	return p.WithX(v)
}

func (d *directional) Walk(r Rect, p Partial) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for v := range d.values(r) {
			bound := d.bind(p, v)
			if d.next == nil {
				if !yield(bound.Complete(r)) {
					return
				}
				continue
			}
			for c := range d.next.Walk(r, bound) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (d *directional) String() string {
	if d.next == nil {
		return d.name
	}
	return fmt.Sprintf("%s(%v)", d.name, d.next)
}

func LeftToRight(next Order) Order {
	return &directional{name: "left_to_right", axis: axisX, next: next}
}

func RightToLeft(next Order) Order {
	return &directional{name: "right_to_left", axis: axisX, reverse: true, next: next}
}

func TopToBottom(next Order) Order {
	return &directional{name: "top_to_bottom", axis: axisY, next: next}
}

func BottomToTop(next Order) Order {
	return &directional{name: "bottom_to_top", axis: axisY, reverse: true, next: next}
}

var constructors = map[string]func(Order) Order{
	"left_to_right": LeftToRight,
	"right_to_left": RightToLeft,
	"top_to_bottom": TopToBottom,
	"bottom_to_top": BottomToTop,
}

// Lookup resolves a directional order by name.
func Lookup(name string, next Order) (Order, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
	return fn(next), nil
}

// Names lists the directional orders known to Lookup.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for k := range constructors {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Collect drains a sequence into a slice.
func Collect(seq iter.Seq[Coord]) []Coord {
	return slices.Collect(seq)
}
