package animation

import "errors"

var (
	// ErrInvalidConfig indicates a geometry or frame rate the loop cannot use.
	ErrInvalidConfig = errors.New("animation: invalid config")

	// ErrCallbackPanic indicates a tick function or stage panicked.
	ErrCallbackPanic = errors.New("animation: callback panicked")

	// ErrAlreadyRunning indicates a second Run on the same Runner.
	ErrAlreadyRunning = errors.New("animation: runner already started")

	// ErrUnknownPolicy indicates an error policy name ParsePolicy does not know.
	ErrUnknownPolicy = errors.New("animation: unknown error policy")
)
