package shape

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Shape names used in errors and log records.
const (
	kindCircle   = "circle"
	kindTriangle = "triangle"
)

// tagTriangle is the validation tag reported by triangleInequality.
const tagTriangle = "triangle"

// validate is safe for concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("param")
	})
	v.RegisterStructValidation(triangleInequality, triangleSides{})
	return v
}

// triangleInequality runs after the field rules. Non-positive sides are
// already reported there, so only the inequality is checked here.
func triangleInequality(sl validator.StructLevel) {
	s := sl.Current().Interface().(triangleSides)
	if !(s.A > 0 && s.B > 0 && s.C > 0) {
		return
	}
	if !formsTriangle(s.A, s.B, s.C) {
		sl.ReportError(s, "sides", "sides", tagTriangle, "")
	}
}

// check validates constructor params and converts the first violation into
// an *ArgumentError.
func check(kind string, params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	argErr := argumentError(kind, verrs[0], params)
	Logger().Debug("shape: construction rejected",
		"shape", argErr.Shape,
		"param", argErr.Param,
		"values", argErr.Values,
		"reason", argErr.Reason)
	return argErr
}

func argumentError(kind string, fe validator.FieldError, params any) *ArgumentError {
	if fe.Tag() == tagTriangle {
		s := params.(triangleSides)
		return &ArgumentError{
			Shape:  kind,
			Param:  fe.Field(),
			Values: []float64{s.A, s.B, s.C},
			Reason: ReasonNotTriangle,
		}
	}

	v, _ := fe.Value().(float64)
	return &ArgumentError{
		Shape:  kind,
		Param:  fe.Field(),
		Values: []float64{v},
		Reason: ReasonNotPositive,
	}
}
