// Package effects holds the demo animations the CLI can play. Each effect
// is a tick function plus the stages it appends to a chain.
package effects

import (
	"fmt"
	"sort"
	"time"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/pipeline"
)

type Effect struct {
	Name        string
	Description string
	Tick        animation.TickFunc
	Stages      []pipeline.Stage
}

// Install appends the effect's stages to c.
func (e Effect) Install(c *pipeline.Chain) error {
	for _, s := range e.Stages {
		if err := c.Then(s); err != nil {
			return fmt.Errorf("install %s: %w", e.Name, err)
		}
	}
	return nil
}

var registry = map[string]func() Effect{
	"rainbow": Rainbow,
	"pulse":   func() Effect { return Pulse(DefaultPulseColor, time.Second) },
	"sparkle": func() Effect { return Sparkle(uint64(time.Now().UnixNano())) },
	"chase":   func() Effect { return Chase(DefaultChaseColor, 4) },
	"plasma":  Plasma,
}

// Get builds a fresh instance of the named effect. Effects carry state, so
// every call returns a new one.
func Get(name string) (Effect, error) {
	fn, ok := registry[name]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
