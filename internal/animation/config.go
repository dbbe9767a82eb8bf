package animation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/everyside/vixel/internal/pipeline"
)

const DefaultFrameRate = 30.0

// Policy decides what a failing tick does to the loop.
type Policy int

const (
	// Halt stops the loop and returns the error from Run.
	Halt Policy = iota
	// Skip logs the error, drops the frame and keeps ticking.
	Skip
)

func (p Policy) String() string {
	if p == Skip {
		return "skip"
	}
	return "halt"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "halt":
		return Halt, nil
	case "skip":
		return Skip, nil
	}
	return Halt, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// TickFunc computes the per-tick user value stored in Context.Tick. It runs
// once per frame before the chain.
type TickFunc func(ctx *pipeline.Context) (any, error)

type Config struct {
	Width, Height int
	// FrameRate in frames per second; zero means DefaultFrameRate.
	FrameRate float64
	// Tick may be nil, in which case Context.Tick holds the frame number.
	Tick TickFunc
	// Math overrides the trigonometric helpers; nil keeps the math package.
	Math        *pipeline.Math
	ErrorPolicy Policy
	// MaxFrames stops the loop after that many ticks; zero runs forever.
	MaxFrames int
}

func DefaultConfig() Config {
	return Config{
		Width:     8,
		Height:    8,
		FrameRate: DefaultFrameRate,
	}
}

func (c *Config) validate() error {
	if c.FrameRate == 0 {
		c.FrameRate = DefaultFrameRate
	}
	if _, err := FrameLength(c.FrameRate); err != nil {
		return err
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: max frames must not be negative, got %d", ErrInvalidConfig, c.MaxFrames)
	}
	return nil
}

// FrameLength converts a frame rate into the duration of one frame. Rates
// that are not finite and positive, or whose frame does not fit in a
// time.Duration, are rejected with ErrInvalidConfig.
func FrameLength(frameRate float64) (time.Duration, error) {
	if math.IsNaN(frameRate) || math.IsInf(frameRate, 0) || frameRate <= 0 {
		return 0, fmt.Errorf("%w: frame rate must be positive and finite, got %g", ErrInvalidConfig, frameRate)
	}
	ns := float64(time.Second) / frameRate
	if ns < 1 || ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: frame rate %g gives an unusable frame length", ErrInvalidConfig, frameRate)
	}
	return time.Duration(ns), nil
}
