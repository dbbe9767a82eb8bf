package traverse

import (
	"fmt"
	"iter"
)

// Toggle is the state shared by every Walk of one Alternator.
type Toggle struct {
	odd bool
}

// Flip reports whether the current invocation is an even one (1st, 3rd, ...)
// and advances the state.
func (t *Toggle) Flip() (first bool) {
	first = !t.odd
	t.odd = !t.odd
	return first
}

func (t *Toggle) Reset() { t.odd = false }

// Alternator delegates whole walks alternately to First and Second.
type Alternator struct {
	First, Second Order
	State         Toggle
}

func Alternating(first, second Order) *Alternator {
	return &Alternator{First: first, Second: second}
}

// Walk flips the toggle immediately, not when the sequence is consumed.
func (a *Alternator) Walk(r Rect, p Partial) iter.Seq[Coord] {
	if a.State.Flip() {
		return a.First.Walk(r, p)
	}
	return a.Second.Walk(r, p)
}

func (a *Alternator) Reset() { a.State.Reset() }

func (a *Alternator) String() string {
	return fmt.Sprintf("alternating(%v, %v)", a.First, a.Second)
}

// Resetter is implemented by orders that carry state between walks.
type Resetter interface {
	Reset()
}

// Reset rewinds every stateful order reachable from o.
func Reset(o Order) {
	switch v := o.(type) {
	case *Alternator:
		v.Reset()
		Reset(v.First)
		Reset(v.Second)
	case *directional:
		if v.next != nil {
			Reset(v.next)
		}
	case Resetter:
		v.Reset()
	}
}
