package metrics

import (
	"time"

	"github.com/everyside/vixel/internal/animation"
)

// Interval keeps a bounded history of inter-tick intervals in milliseconds.
// Value is the mean of the retained history.
type Interval struct {
	capacity int
	last     time.Duration
	seen     bool
	history  []float64
}

func NewInterval(capacity int) *Interval {
	if capacity < 1 {
		capacity = 1
	}
	return &Interval{capacity: capacity, history: make([]float64, 0, capacity)}
}

func (iv *Interval) Name() string { return "interval_ms" }

func (iv *Interval) Observe(s animation.Stats) {
	if iv.seen {
		ms := float64(s.Time-iv.last) / float64(time.Millisecond)
		if len(iv.history) == iv.capacity {
			copy(iv.history, iv.history[1:])
			iv.history = iv.history[:len(iv.history)-1]
		}
		iv.history = append(iv.history, ms)
	}
	iv.last = s.Time
	iv.seen = true
}

func (iv *Interval) Value() float64 {
	if len(iv.history) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range iv.history {
		sum += v
	}
	return sum / float64(len(iv.history))
}

// History returns a copy of the retained intervals, oldest first.
func (iv *Interval) History() []float64 {
	out := make([]float64, len(iv.history))
	copy(out, iv.history)
	return out
}

func (iv *Interval) Reset() {
	iv.history = iv.history[:0]
	iv.seen = false
	iv.last = 0
}
