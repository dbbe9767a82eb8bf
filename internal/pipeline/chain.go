package pipeline

// Chain is an ordered list of stages executed against one Context. It is
// built before the loop starts and frozen once running.
type Chain struct {
	stages []Stage
	frozen bool
}

func NewChain(stages ...Stage) (*Chain, error) {
	c := &Chain{stages: make([]Stage, 0, len(stages))}
	for _, s := range stages {
		if err := c.Then(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Then appends s after the current tail.
func (c *Chain) Then(s Stage) error {
	if c.frozen {
		return ErrFrozen
	}
	if s == nil {
		return ErrNotAFunction
	}
	if err := s.validate(); err != nil {
		return err
	}
	c.stages = append(c.stages, s)
	return nil
}

func (c *Chain) Draw(fn DrawFunc) error { return c.Then(Draw{Fn: fn}) }

// Map appends a per-pixel stage. It only accepts a function.
func (c *Chain) Map(fn MapFunc) error { return c.Then(Map{Fn: fn}) }

func (c *Chain) Freeze() { c.frozen = true }

func (c *Chain) Frozen() bool { return c.frozen }

func (c *Chain) Len() int { return len(c.stages) }

func (c *Chain) Stages() []Stage {
	out := make([]Stage, len(c.stages))
	copy(out, c.stages)
	return out
}

// Run executes every stage in registration order and returns a shallow
// snapshot of the context as left by the last stage. The first failing
// stage aborts the run.
func (c *Chain) Run(ctx *Context) (Context, error) {
	for i, s := range c.stages {
		if err := s.Run(ctx); err != nil {
			return ctx.Snapshot(), &StageError{Index: i, Kind: s.Kind(), Err: err}
		}
	}
	return ctx.Snapshot(), nil
}
