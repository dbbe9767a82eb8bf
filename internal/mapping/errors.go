package mapping

import "errors"

// ErrMalformedTraversal indicates a layout whose concatenated walk does not
// visit every pixel exactly once.
var ErrMalformedTraversal = errors.New("mapping: malformed traversal")
