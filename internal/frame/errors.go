package frame

import "errors"

var (
	// ErrInvalidGeometry indicates a width or height outside [1, 255].
	ErrInvalidGeometry = errors.New("frame: invalid geometry")

	// ErrIndexOutOfRange indicates a pixel address outside the frame.
	ErrIndexOutOfRange = errors.New("frame: index out of range")

	// ErrMalformedData indicates a wire buffer whose length disagrees with its header.
	ErrMalformedData = errors.New("frame: malformed frame data")
)
