package effects

import "errors"

var ErrUnknownEffect = errors.New("effects: unknown effect")
