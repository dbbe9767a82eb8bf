package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAFunction indicates a nil stage or a nil Draw/Map function.
	ErrNotAFunction = errors.New("pipeline: stage requires a function")

	// ErrFrozen indicates an append to a chain that is already running.
	ErrFrozen = errors.New("pipeline: chain is frozen")

	// ErrNoFrame indicates a chain run against a context without a frame.
	ErrNoFrame = errors.New("pipeline: context has no frame")
)

// StageError wraps a failure with the position and kind of the stage.
type StageError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
