package precastro

import (
	"errors"
	"fmt"
)

// ErrNovas is the single error kind shared by every failure of the external
// reduction routine. Callers that need to distinguish failure causes must
// inspect the code carried by the NovasError; the kind itself is never
// subdivided.
var ErrNovas = errors.New("NOVAS error")

// ErrBadArgs is returned when a call does not match a builtin's declared
// argument shape. The adapter function is never invoked in that case.
var ErrBadArgs = errors.New("bad argument shape")

// ErrUnknownFunction is returned when a call names no registered builtin.
var ErrUnknownFunction = errors.New("unknown function")

// NovasError reports a nonzero status code from the reduction routine.
type NovasError struct {
	Code int
}

func (e *NovasError) Error() string {
	return fmt.Sprintf("NOVAS error code %d", e.Code)
}

func (e *NovasError) Unwrap() error { return ErrNovas }

// UnsupportedTimescaleError is returned by Time conversions that have no
// implementation for the source timescale.
type UnsupportedTimescaleError struct {
	Timescale string
}

func (e *UnsupportedTimescaleError) Error() string {
	return "operation not supported with timescale " + e.Timescale
}
