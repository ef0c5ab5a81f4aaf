package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by the aggregator when asked to reduce an empty
// set of final values. It should be unreachable through the engine, which
// requires num_simulations >= 1, but the aggregator guards it anyway.
var ErrEmptyInput = errors.New("no final values to aggregate")

// InvalidParameterError reports a structural precondition violation in a
// plan. It is surfaced to the caller before any simulation cost is paid.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// IsInvalidParameter reports whether err wraps an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}
