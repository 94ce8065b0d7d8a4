package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/dynamo"
)

// FrequencyResponse is an undamped single-degree-of-freedom system under
// harmonic forcing.
type FrequencyResponse struct {
	Mass      float64
	Stiffness float64
}

func NewFrequencyResponse() *FrequencyResponse {
	return &FrequencyResponse{Mass: DefaultMass, Stiffness: DefaultStiffness}
}

func (r *FrequencyResponse) Validate() error {
	if err := dynamo.RequirePositive("mass", r.Mass); err != nil {
		return err
	}
	return dynamo.RequirePositive("stiffness", r.Stiffness)
}

// NaturalFrequency returns ω_n in rad/s.
func (r *FrequencyResponse) NaturalFrequency() float64 {
	return math.Sqrt(r.Stiffness / r.Mass)
}

// MagnificationRatio returns |M| = |1 / (1 - (f/ω_n)²)| for a forcing
// frequency f in rad/s. At f == ω_n the result is +Inf.
func (r *FrequencyResponse) MagnificationRatio(f float64) float64 {
	beta := f / r.NaturalFrequency()
	den := 1 - beta*beta
	if den == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / den)
}

// Ratios evaluates the magnification ratio over a forcing-frequency grid.
func (r *FrequencyResponse) Ratios(grid dynamo.Grid) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return grid.Map(r.MagnificationRatio), nil
}

func (r *FrequencyResponse) GetParams() map[string]float64 {
	return map[string]float64{"mass": r.Mass, "stiffness": r.Stiffness}
}

func (r *FrequencyResponse) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		r.Mass = value
	case "stiffness":
		r.Stiffness = value
	default:
		return fmt.Errorf("%w: frequency response has no %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
