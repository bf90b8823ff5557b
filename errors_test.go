package shape

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestArgumentError_Message(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		want  string
	}{
		{
			"circle zero radius",
			func() error { _, err := NewCircle(0); return err },
			"shape: circle radius 0: must be greater than zero",
		},
		{
			"circle negative radius",
			func() error { _, err := NewCircle(-2.5); return err },
			"shape: circle radius -2.5: must be greater than zero",
		},
		{
			"triangle negative side",
			func() error { _, err := NewTriangle(3, 4, -5); return err },
			"shape: triangle side c -5: must be greater than zero",
		},
		{
			"triangle inequality",
			func() error { _, err := NewTriangle(1, 1, 5); return err },
			"shape: triangle sides 1, 1, 5: cannot form a triangle",
		},
		{
			"triangle NaN side",
			func() error { _, err := NewTriangle(math.NaN(), 1, 1); return err },
			"shape: triangle side a NaN: must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgumentError_Wrapped(t *testing.T) {
	_, err := NewCircle(-1)
	wrapped := fmt.Errorf("load figure: %w", err)

	if !errors.Is(wrapped, ErrInvalidArgument) {
		t.Error("wrapped error does not match ErrInvalidArgument")
	}
	var argErr *ArgumentError
	if !errors.As(wrapped, &argErr) {
		t.Fatal("wrapped error is not *ArgumentError")
	}
	if len(argErr.Values) != 1 || argErr.Values[0] != -1 {
		t.Errorf("Values = %v, want [-1]", argErr.Values)
	}
}
