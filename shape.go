package shape

// Shape is implemented by every figure that has an area.
type Shape interface {
	// Area returns the area of the figure. It is never negative for a
	// figure obtained from one of the package constructors.
	Area() float64
}

// Area returns the area of s.
//
// It exists so heterogeneous figures can be measured through one call site:
//
//	for _, s := range []shape.Shape{circle, triangle} {
//	    total += shape.Area(s)
//	}
func Area(s Shape) float64 {
	return s.Area()
}

// Compile-time interface checks.
var (
	_ Shape = Circle{}
	_ Shape = Triangle{}
)
