package metrics

import (
	"time"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/frame"
)

type Metric interface {
	Name() string
	Observe(s animation.Stats)
	Value() float64
	Reset()
}

// Set feeds every frame's stats to its metrics. It is an animation.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) OnFrame(_ *frame.Frame, st animation.Stats) {
	for _, m := range s.metrics {
		m.Observe(st)
	}
}

func (s *Set) Report() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

// FrameRate is the achieved rate over the observed ticks.
type FrameRate struct {
	first, last time.Duration
	samples     int
}

func NewFrameRate() *FrameRate { return &FrameRate{} }

func (f *FrameRate) Name() string { return "fps" }

func (f *FrameRate) Observe(s animation.Stats) {
	if f.samples == 0 {
		f.first = s.Time
	}
	f.last = s.Time
	f.samples++
}

func (f *FrameRate) Value() float64 {
	span := f.last - f.first
	if f.samples < 2 || span <= 0 {
		return 0
	}
	return float64(f.samples-1) / span.Seconds()
}

func (f *FrameRate) Reset() { *f = FrameRate{} }

// Processing is the mean time spent in the tick function and chain, in
// milliseconds.
type Processing struct {
	total   time.Duration
	samples int
}

func NewProcessing() *Processing { return &Processing{} }

func (p *Processing) Name() string { return "processing_ms" }

func (p *Processing) Observe(s animation.Stats) {
	p.total += s.Processing
	p.samples++
}

func (p *Processing) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples) / float64(time.Millisecond)
}

func (p *Processing) Reset() { *p = Processing{} }

// Overruns counts ticks whose processing did not fit in the frame budget.
type Overruns struct {
	budget time.Duration
	count  int
}

// NewOverruns measures against the frame length of frameRate. A rate with
// no usable frame length falls back to animation.DefaultFrameRate.
func NewOverruns(frameRate float64) *Overruns {
	budget, err := animation.FrameLength(frameRate)
	if err != nil {
		budget, _ = animation.FrameLength(animation.DefaultFrameRate)
	}
	return &Overruns{budget: budget}
}

func (o *Overruns) Budget() time.Duration { return o.budget }

func (o *Overruns) Name() string { return "overruns" }

func (o *Overruns) Observe(s animation.Stats) {
	if s.Processing >= o.budget-time.Millisecond {
		o.count++
	}
}

func (o *Overruns) Value() float64 { return float64(o.count) }

func (o *Overruns) Reset() { o.count = 0 }
