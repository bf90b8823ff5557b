package shape

import "math"

// Circle is a circle with a strictly positive radius.
//
// The zero value is not a valid circle; use [NewCircle].
type Circle struct {
	radius float64
}

// circleParams carries constructor input through validation.
type circleParams struct {
	Radius float64 `param:"radius" validate:"gt=0"`
}

// NewCircle returns a circle of the given radius.
//
// It fails with an [*ArgumentError] matching [ErrInvalidArgument] when
// radius is not greater than zero (NaN included).
func NewCircle(radius float64) (Circle, error) {
	if err := check(kindCircle, circleParams{Radius: radius}); err != nil {
		return Circle{}, err
	}
	return Circle{radius: radius}, nil
}

// Radius returns the radius of the circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}
