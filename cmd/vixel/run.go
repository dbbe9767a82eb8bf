package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/config"
	"github.com/everyside/vixel/internal/effects"
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/metrics"
	"github.com/everyside/vixel/internal/pipeline"
	"github.com/everyside/vixel/internal/storage"
	"github.com/everyside/vixel/internal/viz"
)

// session is one configured animation ready to run.
type session struct {
	cfg     *config.Config
	indices []int
	runner  *animation.Runner
}

func newSession(cfg *config.Config, mapped bool) (*session, error) {
	g, err := cfg.Geometry()
	if err != nil {
		return nil, err
	}
	layout, err := cfg.BuildLayout()
	if err != nil {
		return nil, err
	}
	indices, err := layout.Indices(g)
	if err != nil {
		return nil, err
	}

	eff, err := effects.Get(cfg.Effect)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, effects.List())
	}
	chain, err := pipeline.NewChain()
	if err != nil {
		return nil, err
	}
	if err := eff.Install(chain); err != nil {
		return nil, err
	}
	if mapped {
		if err := chain.Then(pipeline.Mapper{Layout: layout}); err != nil {
			return nil, err
		}
	}

	acfg, err := cfg.Animation()
	if err != nil {
		return nil, err
	}
	acfg.Tick = eff.Tick
	runner, err := animation.New(acfg, chain)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, indices: indices, runner: runner}, nil
}

func (s *session) presetName() string {
	if len(s.cfg.Layout) > 0 {
		return "custom"
	}
	return s.cfg.Preset
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// stream writes every frame's wire bytes to w, as a device link would
// receive them.
type stream struct {
	w   io.Writer
	err error
}

func (s *stream) OnFrame(f *frame.Frame, _ animation.Stats) {
	if s.err != nil {
		return
	}
	if _, err := s.w.Write(f.Data()); err != nil {
		s.err = err
		logger.Error("stream stopped", "err", err)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, physical)
	if err != nil {
		return err
	}

	set := metrics.NewSet(metrics.NewFrameRate(), metrics.NewProcessing(), metrics.NewOverruns(cfg.FrameRate))
	sess.runner.AddObserver(set)

	var out *stream
	if outPath != "" {
		w := io.Writer(os.Stdout)
		if outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		out = &stream{w: w}
		sess.runner.AddObserver(out)
	}

	var rec *storage.Recorder
	if record {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		g, _ := cfg.Geometry()
		rec, err = st.Create(storage.Metadata{
			Effect:    cfg.Effect,
			Preset:    sess.presetName(),
			Width:     g.Width,
			Height:    g.Height,
			FrameRate: cfg.FrameRate,
			Physical:  physical,
		})
		if err != nil {
			return err
		}
		sess.runner.AddObserver(rec)
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Info("running", "effect", cfg.Effect, "preset", sess.presetName(), "size", fmt.Sprintf("%dx%d", cfg.Size[0], cfg.Size[1]))
	runErr := sess.runner.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	report := set.Report()
	if rec != nil {
		meta, err := rec.Close(report)
		if err != nil && runErr == nil {
			runErr = err
		}
		if meta != nil {
			fmt.Fprintf(os.Stderr, "recording: %s (%d frames)\n", meta.ID, meta.Frames)
		}
	}
	if out != nil && out.err != nil && runErr == nil {
		runErr = out.err
	}

	printReport(os.Stderr, report)
	return runErr
}

func printReport(w io.Writer, report map[string]float64) {
	names := make([]string, 0, len(report))
	for k := range report {
		names = append(names, k)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	for _, k := range names {
		fmt.Fprintf(tw, "%s\t%.3f\n", k, report[k])
	}
	tw.Flush()
}

// runPicker lets the user choose an effect and wiring, then starts the live
// view with them.
func runPicker(cmd *cobra.Command, args []string) error {
	notes := make(map[string]string)
	for _, name := range effects.List() {
		if eff, err := effects.Get(name); err == nil {
			notes[name] = eff.Description
		}
	}
	res, err := tea.NewProgram(viz.NewPicker(effects.List(), config.ListPresets(), notes)).Run()
	if err != nil {
		return err
	}
	choice, ok := res.(viz.Picker).Choice()
	if !ok {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Effect = choice.Effect
	cfg.Preset = choice.Preset
	cfg.Layout = nil
	return live(cfg)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return live(cfg)
}

func live(cfg *config.Config) error {
	sess, err := newSession(cfg, false)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	title := fmt.Sprintf("%s · %s", cfg.Effect, sess.presetName())
	p := tea.NewProgram(viz.NewModel(title, cfg.FrameRate, sess.indices, stop))
	sess.runner.AddObserver(viz.Feed(p))

	h := sess.runner.Start(ctx)
	go func() {
		err := h.Wait()
		p.Send(viz.DoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		h.Stop()
		return err
	}
	h.Stop()
	return h.Wait()
}

// benchFrames is the default bench length: three seconds of frames, at
// least one.
func benchFrames(frameRate float64) int {
	return max(1, int(math.Ceil(frameRate*3)))
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = benchFrames(cfg.FrameRate)
	}
	sess, err := newSession(cfg, true)
	if err != nil {
		return err
	}

	intervals := metrics.NewInterval(cfg.MaxFrames)
	processing := metrics.NewProcessing()
	set := metrics.NewSet(metrics.NewFrameRate(), processing, metrics.NewOverruns(cfg.FrameRate), intervals)
	sess.runner.AddObserver(set)

	ctx, stop := signalContext()
	defer stop()

	fmt.Printf("benchmarking %s at %.1f fps for %d frames\n\n", cfg.Effect, cfg.FrameRate, cfg.MaxFrames)
	if err := sess.runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	printReport(os.Stdout, set.Report())
	if hist := intervals.History(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("frame interval (ms)")))
	}
	return nil
}
