// Package shape computes the area of simple geometric figures.
//
// # Overview
//
// Every figure implements [Shape], a one-method capability:
//
//	type Shape interface {
//	    Area() float64
//	}
//
// Two figures are provided, [Circle] and [Triangle]. Both are immutable
// values validated at construction: a constructor either returns a fully
// valid figure or an error, never a partially built one.
//
// # Quick Start
//
//	import "github.com/gogpu/shape"
//
//	c, err := shape.NewCircle(2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Area()) // 12.566370614359172
//
//	t, err := shape.NewTriangle(3, 4, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(shape.Area(t), t.IsRight()) // 6 true
//
// # Errors
//
// Constructors report rejected input as an [*ArgumentError] that matches
// [ErrInvalidArgument] with [errors.Is]. Area computation and the
// right-triangle predicate never fail.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug records
// for rejected constructions.
//
// # Concurrency
//
// Figures hold no mutable state and may be shared between goroutines
// without synchronization.
package shape

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
