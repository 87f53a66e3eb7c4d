package barrier

import "errors"

// ErrInvalidRange is returned by NewAdaptive when muMin > muMax.
var ErrInvalidRange = errors.New("barrier: muMin must not exceed muMax")
