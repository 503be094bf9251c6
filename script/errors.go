package script

import (
	"github.com/pkg/errors"
)

// Errors used by the package.
var (
	ErrUnknownOp       = errors.New("unknown operation")
	ErrUnknownKeyType  = errors.New("unknown key type")
	ErrInvalidValue    = errors.New("invalid value")
	ErrMissingValue    = errors.New("operation requires at least one value")
	ErrUnexpectedValue = errors.New("operation does not take values")
	ErrInvalidScript   = errors.New("invalid script")
)
