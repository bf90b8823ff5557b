package shape

import (
	"math"
	"slices"
)

// RightAngleTolerance is the absolute tolerance used by [Triangle.IsRight]
// when comparing the square of the longest side with the sum of the squares
// of the other two.
const RightAngleTolerance = 1e-10

// Triangle is a triangle given by the lengths of its three sides.
//
// The zero value is not a valid triangle; use [NewTriangle].
type Triangle struct {
	a, b, c float64
}

// triangleSides carries constructor input through validation. The triangle
// inequality is checked by a struct-level rule registered in validate.go.
type triangleSides struct {
	A float64 `param:"side a" validate:"gt=0"`
	B float64 `param:"side b" validate:"gt=0"`
	C float64 `param:"side c" validate:"gt=0"`
}

// NewTriangle returns a triangle with sides a, b and c.
//
// It fails with an [*ArgumentError] matching [ErrInvalidArgument] when any
// side is not greater than zero, or when the sides violate the strict
// triangle inequality (the sum of any two sides must exceed the third).
// Side positivity is reported before the inequality.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if err := check(kindTriangle, triangleSides{A: a, B: b, C: c}); err != nil {
		return Triangle{}, err
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// Sides returns the side lengths in construction order.
func (t Triangle) Sides() (a, b, c float64) {
	return t.a, t.b, t.c
}

// Area returns the area of the triangle using Heron's formula.
func (t Triangle) Area() float64 {
	p := (t.a + t.b + t.c) / 2
	return math.Sqrt(p * (p - t.a) * (p - t.b) * (p - t.c))
}

// IsRight reports whether the triangle has a right angle, within
// [RightAngleTolerance].
func (t Triangle) IsRight() bool {
	s := []float64{t.a, t.b, t.c}
	slices.Sort(s)
	return math.Abs(s[2]*s[2]-(s[0]*s[0]+s[1]*s[1])) < RightAngleTolerance
}

// formsTriangle reports whether a, b and c satisfy the strict triangle
// inequality.
func formsTriangle(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}
