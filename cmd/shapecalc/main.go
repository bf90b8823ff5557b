// Command shapecalc prints the area of a circle or a triangle.
//
// Usage:
//
//	shapecalc circle 2
//	shapecalc triangle 3 4 5 --format json
//	shapecalc --lang de --precision 3 circle 100
//
// Negative numbers must follow "--" so they are not read as flags:
//
//	shapecalc circle -- -1
package main

import (
	"fmt"
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		if !a.errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
