package cli

import "errors"

// errInvalidInput is returned when an argument is not a uint32.
var errInvalidInput = errors.New("invalid input")
