package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const (
	DefaultCableLength   = 5.0
	DefaultLinearDensity = 0.1
	DefaultTension       = 5.0
	DefaultMode          = 3
)

// Cable is a taut cable fixed at both ends.
type Cable struct {
	Length        float64 // m
	LinearDensity float64 // kg/m
	Tension       float64 // N
	Mode          int
}

func NewCable() *Cable {
	return &Cable{
		Length:        DefaultCableLength,
		LinearDensity: DefaultLinearDensity,
		Tension:       DefaultTension,
		Mode:          DefaultMode,
	}
}

func (c *Cable) Validate() error {
	if err := dynamo.RequirePositive("length", c.Length); err != nil {
		return err
	}
	if err := dynamo.RequirePositive("linear_density", c.LinearDensity); err != nil {
		return err
	}
	if err := dynamo.RequirePositive("tension", c.Tension); err != nil {
		return err
	}
	if c.Mode < 1 {
		return &dynamo.ParameterError{Name: "mode", Value: float64(c.Mode), Reason: "must be at least 1"}
	}
	return nil
}

// WaveSpeed returns sqrt(P/m).
func (c *Cable) WaveSpeed() float64 {
	return math.Sqrt(c.Tension / c.LinearDensity)
}

// NaturalFrequency returns (n/2 · L) · sqrt(P/m) in Hz.
//
// The length multiplies rather than divides, which does not match the
// taut-string result returned by StringFrequency. Both are kept until the
// intended formula is confirmed.
func (c *Cable) NaturalFrequency() float64 {
	return (float64(c.Mode) / 2 * c.Length) * c.WaveSpeed()
}

// StringFrequency returns n/(2L) · sqrt(P/m) in Hz.
func (c *Cable) StringFrequency() float64 {
	return float64(c.Mode) / (2 * c.Length) * c.WaveSpeed()
}

// ModeShape returns sin(nπx/L).
func (c *Cable) ModeShape(x float64) float64 {
	return math.Sin(float64(c.Mode) * math.Pi * x / c.Length)
}

// Shape evaluates the mode shape over a spatial grid.
func (c *Cable) Shape(grid dynamo.Grid) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return grid.Map(c.ModeShape), nil
}

// Grid returns segments+1 evenly spaced points over [0, L].
func (c *Cable) Grid(segments int) (dynamo.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", dynamo.ErrInvalidGrid, segments)
	}
	return dynamo.Linspace(0, c.Length, segments+1)
}

func (c *Cable) GetParams() map[string]float64 {
	return map[string]float64{
		"length":         c.Length,
		"linear_density": c.LinearDensity,
		"tension":        c.Tension,
		"mode":           float64(c.Mode),
	}
}

func (c *Cable) SetParam(name string, value float64) error {
	switch name {
	case "length":
		c.Length = value
	case "linear_density":
		c.LinearDensity = value
	case "tension":
		c.Tension = value
	case "mode":
		if value != math.Trunc(value) {
			return &dynamo.ParameterError{Name: "mode", Value: value, Reason: "must be an integer"}
		}
		c.Mode = int(value)
	default:
		return fmt.Errorf("%w: cable has no %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
