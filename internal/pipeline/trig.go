package pipeline

import "math"

// DefaultTableSize gives about 0.0015 rad between entries.
const DefaultTableSize = 4096

// trigTable holds one period of sin sampled at n points. Cos reads the same
// table a quarter period ahead.
type trigTable struct {
	sin []float64
	n   int
}

func newTrigTable(n int) *trigTable {
	t := &trigTable{sin: make([]float64, n), n: n}
	for i := range t.sin {
		t.sin[i] = math.Sin(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

// lookup interpolates linearly between the entries around x.
func (t *trigTable) lookup(x float64, shift int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)
	a := t.sin[(i+shift)%t.n]
	b := t.sin[(i+shift+1)%t.n]
	return a*(1-frac) + b*frac
}

// TableMath returns trigonometric helpers backed by an n-entry lookup table.
// n is rounded up to a multiple of four so cos lines up with table entries.
// Results differ from the math package by at most about (π/n)²/2.
func TableMath(n int) Math {
	if n < 4 {
		n = 4
	}
	n = (n + 3) &^ 3
	t := newTrigTable(n)
	sin := func(x float64) float64 { return t.lookup(x, 0) }
	cos := func(x float64) float64 { return t.lookup(x, n/4) }
	return Math{
		Sin: sin,
		Cos: cos,
		Tan: func(x float64) float64 { return sin(x) / cos(x) },
	}
}
