package encoder

import "errors"

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("encoder: invalid config")
