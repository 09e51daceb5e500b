// Package structure holds the error and warning types shared by the beam
// and frame solvers.
package structure

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input found before any matrix work.
// Entity names the offending item (e.g. "span 2", "member M1") so the caller
// can locate it.
type ValidationError struct {
	Entity string
	Field  string
	Msg    string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Entity != "" && e.Field != "":
		return fmt.Sprintf("invalid input: %s: %s %s", e.Entity, e.Field, e.Msg)
	case e.Entity != "":
		return fmt.Sprintf("invalid input: %s: %s", e.Entity, e.Msg)
	default:
		return "invalid input: " + e.Msg
	}
}

// Invalid is a shorthand constructor for ValidationError.
func Invalid(entity, field, format string, args ...any) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// WarningKind classifies non-fatal findings attached to a result.
type WarningKind string

const (
	// NumericalTolerance is raised when the equilibrium residual of a solved
	// structure exceeds the configured tolerance.
	NumericalTolerance WarningKind = "NUMERICAL_TOLERANCE"
)

// Warning is a non-fatal finding. It never blocks returning a result.
type Warning struct {
	Kind     WarningKind `json:"kind" yaml:"kind"`
	Message  string      `json:"message" yaml:"message"`
	Residual float64     `json:"residual" yaml:"residual"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (residual %.3e)", w.Kind, w.Message, w.Residual)
}
