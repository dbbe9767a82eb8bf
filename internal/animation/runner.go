package animation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/pipeline"
)

var logger = logxi.New("animation")

// SetLogLevel overrides the LOGXI level of the loop logger.
func SetLogLevel(level int) { logger.SetLevel(level) }

// Stats describes one completed tick.
type Stats struct {
	Num        int
	Time       time.Duration
	Processing time.Duration
}

// Observer receives every successfully rendered frame on the loop goroutine.
type Observer interface {
	OnFrame(f *frame.Frame, s Stats)
}

type ObserverFunc func(f *frame.Frame, s Stats)

func (fn ObserverFunc) OnFrame(f *frame.Frame, s Stats) { fn(f, s) }

type Runner struct {
	cfg       Config
	chain     *pipeline.Chain
	ctx       *pipeline.Context
	observers []Observer
	running   atomic.Bool
}

func New(cfg Config, chain *pipeline.Chain) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if chain == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrInvalidConfig)
	}
	g, err := frame.NewGeometry(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	ctx := pipeline.NewContext(g, cfg.FrameRate)
	if cfg.Math != nil {
		ctx.Math = *cfg.Math
	}

	return &Runner{
		cfg:       cfg,
		chain:     chain,
		ctx:       ctx,
		observers: make([]Observer, 0),
	}, nil
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Context exposes the animation state. It must not be touched while the
// loop is running.
func (r *Runner) Context() *pipeline.Context { return r.ctx }

func (r *Runner) FrameLength() time.Duration {
	d, _ := FrameLength(r.cfg.FrameRate)
	return d
}

// Run executes the loop on the calling goroutine.
func (r *Runner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	r.chain.Freeze()

	frameLength := r.FrameLength()
	loopStart := time.Now()

	logger.Info("animation started", "geometry", r.ctx.Geometry.String(), "fps", r.cfg.FrameRate, "stages", r.chain.Len())

	for num := 0; ; num++ {
		select {
		case <-ctx.Done():
			logger.Info("animation stopped", "frames", num)
			return ctx.Err()
		default:
		}
		if r.cfg.MaxFrames > 0 && num >= r.cfg.MaxFrames {
			logger.Info("animation finished", "frames", num)
			return nil
		}

		startTime := time.Now()
		elapsedSinceStart := startTime.Sub(loopStart)

		good := r.ctx.Frame
		if err := r.tick(num, elapsedSinceStart); err != nil {
			if r.cfg.ErrorPolicy == Halt {
				return fmt.Errorf("frame %d: %w", num, err)
			}
			logger.Warn("frame dropped", "num", num, "err", err)
			r.ctx.Frame = good
		} else {
			stats := Stats{Num: num, Time: elapsedSinceStart, Processing: time.Since(startTime)}
			for _, o := range r.observers {
				o.OnFrame(r.ctx.Frame, stats)
			}
		}

		wait := frameLength - time.Since(startTime) - time.Millisecond
		if wait < 0 && logger.IsDebug() {
			logger.Debug("frame overrun", "num", num, "wait", wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("animation stopped", "frames", num+1)
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tick advances the context and runs the tick function and chain. Panics
// are converted to ErrCallbackPanic.
func (r *Runner) tick(num int, t time.Duration) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, rec)
		}
	}()

	r.ctx.Advance(num, t)

	if r.cfg.Tick != nil {
		v, err := r.cfg.Tick(r.ctx)
		if err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		r.ctx.Tick = v
	} else {
		r.ctx.Tick = num
	}

	_, err = r.chain.Run(r.ctx)
	return err
}

// Handle controls a loop started with Start.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs the loop in its own goroutine.
func (r *Runner) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer cancel()
		h.err = r.Run(ctx)
	}()
	return h
}

// Stop requests shutdown; the current tick completes first.
func (h *Handle) Stop() { h.cancel() }

func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the loop exits. Cancellation is not an error.
func (h *Handle) Wait() error {
	<-h.done
	if errors.Is(h.err, context.Canceled) {
		return nil
	}
	return h.err
}
