package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/shape"
	"github.com/spf13/cobra"
)

func (a *app) circleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "circle <radius>",
		Short:   "Print the area of a circle",
		Example: "  shapecalc circle 2\n  shapecalc circle 2.5 --format json",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runCircle,
	}
}

func (a *app) runCircle(cmd *cobra.Command, args []string) error {
	r, err := parseLength("radius", args[0])
	if err != nil {
		return a.outputError("circle", err)
	}

	c, err := shape.NewCircle(r)
	if err != nil {
		return a.outputError("circle", err)
	}

	area := shape.Area(c)
	if err := checkArea("circle", area); err != nil {
		return a.outputError("circle", err)
	}
	a.log.Debug("area computed", "shape", "circle", "radius", r, "area", area)

	return a.output(CLIResult{
		Command: "circle",
		Shape:   "circle",
		Params:  map[string]float64{"radius": r},
		Area:    ptr(area),
	})
}

func (a *app) triangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "triangle <a> <b> <c>",
		Short:   "Print the area of a triangle and whether it is right-angled",
		Example: "  shapecalc triangle 3 4 5\n  shapecalc triangle 6 6 6 --precision 4",
		Args:    cobra.ExactArgs(3),
		RunE:    a.runTriangle,
	}
}

func (a *app) runTriangle(cmd *cobra.Command, args []string) error {
	var sides [3]float64
	for i, name := range []string{"side a", "side b", "side c"} {
		v, err := parseLength(name, args[i])
		if err != nil {
			return a.outputError("triangle", err)
		}
		sides[i] = v
	}

	t, err := shape.NewTriangle(sides[0], sides[1], sides[2])
	if err != nil {
		return a.outputError("triangle", err)
	}

	area := shape.Area(t)
	if err := checkArea("triangle", area); err != nil {
		return a.outputError("triangle", err)
	}
	right := t.IsRight()
	a.log.Debug("area computed", "shape", "triangle", "sides", sides[:], "area", area, "right", right)

	return a.output(CLIResult{
		Command: "triangle",
		Shape:   "triangle",
		Params:  map[string]float64{"a": sides[0], "b": sides[1], "c": sides[2]},
		Area:    ptr(area),
		Right:   ptr(right),
	})
}

// parseLength parses a numeric command-line argument. Range checks are left
// to the shape constructors.
func parseLength(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", name, s)
	}
	return v, nil
}

// checkArea rejects areas that do not fit a float64. Valid but huge
// dimensions overflow to +Inf, which JSON cannot encode.
func checkArea(kind string, area float64) error {
	if math.IsInf(area, 0) || math.IsNaN(area) {
		return fmt.Errorf("%s area overflows float64", kind)
	}
	return nil
}
