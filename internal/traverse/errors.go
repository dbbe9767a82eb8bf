package traverse

import "errors"

// ErrUnknownOrder indicates an order name that Lookup does not recognise.
var ErrUnknownOrder = errors.New("traverse: unknown order")
