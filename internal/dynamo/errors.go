package dynamo

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for model evaluation.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidGrid indicates a grid that cannot be built from the inputs.
	ErrInvalidGrid = errors.New("dynamo: invalid grid")

	// ErrUnknownParam indicates SetParam was called with an unknown name.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownExample indicates a lookup for an example that is not registered.
	ErrUnknownExample = errors.New("dynamo: unknown example")
)

// ParameterError wraps ErrParameterBounds with the offending parameter.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %g (%s)", ErrParameterBounds, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrParameterBounds
}

// RequirePositive returns a *ParameterError unless v is finite and > 0.
func RequirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &ParameterError{Name: name, Value: v, Reason: "must be positive"}
	}
	return nil
}

// RequireNonNegative returns a *ParameterError unless v is finite and >= 0.
func RequireNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &ParameterError{Name: name, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// RequireFinite returns a *ParameterError if v is NaN or infinite.
func RequireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Name: name, Value: v, Reason: "must be finite"}
	}
	return nil
}
