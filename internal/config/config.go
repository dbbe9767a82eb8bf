package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/mapping"
	"github.com/everyside/vixel/internal/pipeline"
	"github.com/everyside/vixel/internal/traverse"
)

const (
	DefaultWidth     = 16
	DefaultHeight    = 16
	DefaultFrameRate = animation.DefaultFrameRate
	DefaultEffect    = "rainbow"
	DefaultPreset    = "serpentine_rows"
	DefaultPolicy    = "halt"
)

var ErrInvalidConfig = errors.New("config: invalid config")

// Config describes one animation: display size, pacing and wiring. When
// Layout is empty the wiring comes from Preset.
type Config struct {
	Size        [2]int  `yaml:"size"`
	FrameRate   float64 `yaml:"frame_rate"`
	Effect      string  `yaml:"effect"`
	ErrorPolicy string  `yaml:"error_policy"`
	MaxFrames   int     `yaml:"max_frames"`
	// FastMath hands callbacks table-driven trig helpers.
	FastMath bool           `yaml:"fast_math,omitempty"`
	Preset   string         `yaml:"preset,omitempty"`
	Layout   []RegionConfig `yaml:"layout,omitempty"`
}

type RegionConfig struct {
	Origin [2]int      `yaml:"origin"`
	Size   [2]int      `yaml:"size"`
	Order  OrderConfig `yaml:"order"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:        [2]int{DefaultWidth, DefaultHeight},
		FrameRate:   DefaultFrameRate,
		Effect:      DefaultEffect,
		ErrorPolicy: DefaultPolicy,
		Preset:      DefaultPreset,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Geometry() (frame.Geometry, error) {
	g, err := frame.NewGeometry(c.Size[0], c.Size[1])
	if err != nil {
		return frame.Geometry{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return g, nil
}

func (c *Config) Validate() error {
	if _, err := c.Geometry(); err != nil {
		return err
	}
	if _, err := animation.FrameLength(c.FrameRate); err != nil {
		return fmt.Errorf("%w: frame_rate: %v", ErrInvalidConfig, err)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: max_frames must not be negative", ErrInvalidConfig)
	}
	if _, err := animation.ParsePolicy(c.ErrorPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Layout) == 0 && c.Preset != "" && !HasPreset(c.Preset) {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
	}
	return nil
}

// Regions returns the explicit layout, or the preset's regions when none is
// given.
func (c *Config) Regions() ([]RegionConfig, error) {
	if len(c.Layout) > 0 {
		return c.Layout, nil
	}
	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	regions := GetPreset(name, c.Size[0], c.Size[1])
	if regions == nil {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return regions, nil
}

// BuildLayout compiles the wiring and checks that it covers the display
// exactly once. The returned layout's alternating state is rewound.
func (c *Config) BuildLayout() (mapping.Layout, error) {
	g, err := c.Geometry()
	if err != nil {
		return nil, err
	}
	regions, err := c.Regions()
	if err != nil {
		return nil, err
	}

	layout := make(mapping.Layout, 0, len(regions))
	for i, r := range regions {
		order, err := r.Order.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: region %d: %v", ErrInvalidConfig, i, err)
		}
		layout = append(layout, mapping.Region{
			Origin: traverse.Coord{X: r.Origin[0], Y: r.Origin[1]},
			Width:  r.Size[0],
			Height: r.Size[1],
			Order:  order,
		})
	}

	if err := layout.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	layout.Reset()
	return layout, nil
}

// Animation returns the loop settings; the tick function is left to the
// caller.
func (c *Config) Animation() (animation.Config, error) {
	policy, err := animation.ParsePolicy(c.ErrorPolicy)
	if err != nil {
		return animation.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg := animation.Config{
		Width:       c.Size[0],
		Height:      c.Size[1],
		FrameRate:   c.FrameRate,
		ErrorPolicy: policy,
		MaxFrames:   c.MaxFrames,
	}
	if c.FastMath {
		m := pipeline.TableMath(pipeline.DefaultTableSize)
		cfg.Math = &m
	}
	return cfg, nil
}
