package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is matched by every construction failure.
var ErrInvalidArgument = errors.New("shape: invalid argument")

// Reasons reported in ArgumentError.Reason.
const (
	ReasonNotPositive = "must be greater than zero"
	ReasonNotTriangle = "cannot form a triangle"
)

// ArgumentError describes the precondition a constructor argument violated.
type ArgumentError struct {
	Shape  string    // "circle" or "triangle"
	Param  string    // offending parameter, e.g. "radius", "side b" or "sides"
	Values []float64 // offending value(s)
	Reason string    // ReasonNotPositive or ReasonNotTriangle
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	vals := make([]string, len(e.Values))
	for i, v := range e.Values {
		vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("shape: %s %s %s: %s", e.Shape, e.Param, strings.Join(vals, ", "), e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
