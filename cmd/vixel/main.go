package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/spf13/cobra"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/config"
	"github.com/everyside/vixel/internal/storage"
)

var logger = logxi.New("vixel")

var (
	dataDir    string
	configFile string
	verbose    bool

	size      string
	frameRate float64
	maxFrames int
	effect    string
	preset    string
	policy    string
	fastMath  bool

	record   bool
	physical bool
	outPath  string
	scale    int
	frameNum int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vixel",
		Short: "LED matrix frame generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logxi.LevelDebug)
				animation.SetLogLevel(logxi.LevelDebug)
				storage.SetLogLevel(logxi.LevelDebug)
			}
		},
		SilenceUsage: true,
		RunE:         runPicker,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vixel", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run an effect headless",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addAnimationFlags(runCmd)
	runCmd.Flags().BoolVar(&record, "record", false, "record frames to the data directory")
	runCmd.Flags().BoolVar(&physical, "physical", false, "emit frames in physical (wiring) order")
	runCmd.Flags().StringVar(&outPath, "out", "", "stream raw frame bytes to a file, - for stdout")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "preview an effect in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addAnimationFlags(liveCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure loop timing for an effect",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	addAnimationFlags(benchCmd)

	wiringCmd := &cobra.Command{
		Use:   "wiring",
		Short: "print the physical index of every pixel",
		Args:  cobra.NoArgs,
		RunE:  showWiring,
	}
	wiringCmd.Flags().StringVar(&size, "size", "", "matrix size as WxH")
	wiringCmd.Flags().StringVar(&preset, "preset", "", "wiring preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list wiring presets and effects",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	gifCmd := &cobra.Command{
		Use:   "export-gif [recording_id]",
		Short: "export a recording as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  exportGIF,
	}
	gifCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <id>.gif)")
	gifCmd.Flags().IntVar(&scale, "scale", 16, "pixel size in the output image")

	pngCmd := &cobra.Command{
		Use:   "export-png [recording_id]",
		Short: "export one frame of a recording as PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	pngCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <id>-<frame>.png)")
	pngCmd.Flags().IntVar(&scale, "scale", 16, "pixel size in the output image")
	pngCmd.Flags().IntVar(&frameNum, "frame", 0, "frame number")

	svgCmd := &cobra.Command{
		Use:   "export-svg [recording_id]",
		Short: "export one frame of a recording as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <id>-<frame>.svg)")
	svgCmd.Flags().IntVar(&scale, "scale", 16, "pixel size in the output image")
	svgCmd.Flags().IntVar(&frameNum, "frame", 0, "frame number")

	rootCmd.AddCommand(runCmd, liveCmd, benchCmd, wiringCmd, presetsCmd, listCmd, gifCmd, pngCmd, svgCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&size, "size", "", "matrix size as WxH")
	cmd.Flags().Float64Var(&frameRate, "fps", config.DefaultFrameRate, "frames per second")
	cmd.Flags().IntVar(&maxFrames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	cmd.Flags().StringVar(&effect, "effect", config.DefaultEffect, "effect name")
	cmd.Flags().StringVar(&preset, "preset", "", "wiring preset")
	cmd.Flags().StringVar(&policy, "policy", config.DefaultPolicy, "error policy: halt or skip")
	cmd.Flags().BoolVar(&fastMath, "fast-math", false, "table-driven trig for effects")
}

// loadConfig reads the config file, if any, then applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		w, h, err := parseSize(size)
		if err != nil {
			return nil, err
		}
		cfg.Size = [2]int{w, h}
		if len(cfg.Layout) > 0 && !flags.Changed("preset") {
			return nil, fmt.Errorf("--size conflicts with the explicit layout in %s; pass --preset too", configFile)
		}
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
		cfg.Layout = nil
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("frames") {
		cfg.MaxFrames = maxFrames
	}
	if flags.Changed("effect") {
		cfg.Effect = effect
	}
	if flags.Changed("policy") {
		cfg.ErrorPolicy = policy
	}
	if flags.Changed("fast-math") {
		cfg.FastMath = fastMath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return w, h, nil
}
