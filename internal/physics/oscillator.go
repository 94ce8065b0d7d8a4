package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 4.0
	DefaultDamping   = 0.2
	DefaultX0        = 0.1
	DefaultV0        = 0.0

	// DefaultCriticalTolerance is the absolute window around ζ = 1 that is
	// treated as critical damping.
	DefaultCriticalTolerance = 1e-9
)

// Regime is the damping regime of a single-degree-of-freedom oscillator.
type Regime int

const (
	Underdamped Regime = iota
	CriticallyDamped
	Overdamped
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Oscillator is a damped mass-spring system released from (X0, V0).
type Oscillator struct {
	Mass              float64
	Stiffness         float64
	Damping           float64
	X0                float64
	V0                float64
	CriticalTolerance float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{
		Mass:              DefaultMass,
		Stiffness:         DefaultStiffness,
		Damping:           DefaultDamping,
		X0:                DefaultX0,
		V0:                DefaultV0,
		CriticalTolerance: DefaultCriticalTolerance,
	}
}

func (o *Oscillator) Validate() error {
	if err := dynamo.RequirePositive("mass", o.Mass); err != nil {
		return err
	}
	if err := dynamo.RequirePositive("stiffness", o.Stiffness); err != nil {
		return err
	}
	if err := dynamo.RequireNonNegative("damping", o.Damping); err != nil {
		return err
	}
	if err := dynamo.RequireFinite("x0", o.X0); err != nil {
		return err
	}
	if err := dynamo.RequireFinite("v0", o.V0); err != nil {
		return err
	}
	return dynamo.RequireNonNegative("critical_tolerance", o.CriticalTolerance)
}

// NaturalFrequency returns ω_n in rad/s.
func (o *Oscillator) NaturalFrequency() float64 {
	return math.Sqrt(o.Stiffness / o.Mass)
}

// NaturalFrequencyHz returns ω_n / 2π.
func (o *Oscillator) NaturalFrequencyHz() float64 {
	return o.NaturalFrequency() / (2 * math.Pi)
}

// DampingRatio returns ζ = c / (2 m ω_n).
func (o *Oscillator) DampingRatio() float64 {
	return o.Damping / (2 * o.Mass * o.NaturalFrequency())
}

// Regime classifies the damping ratio. ζ within CriticalTolerance of 1 is
// critical.
func (o *Oscillator) Regime() Regime {
	zeta := o.DampingRatio()
	switch {
	case math.Abs(zeta-1) <= o.CriticalTolerance:
		return CriticallyDamped
	case zeta < 1:
		return Underdamped
	default:
		return Overdamped
	}
}

// Response is the closed-form free response for one damping regime.
type Response interface {
	Regime() Regime
	Displacement(t float64) float64
	Velocity(t float64) float64
}

// Solve validates the parameters and returns the response for the regime
// selected by the damping ratio.
func (o *Oscillator) Solve() (Response, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	wn := o.NaturalFrequency()
	zeta := o.DampingRatio()
	x0, v0 := o.X0, o.V0

	switch o.Regime() {
	case Underdamped:
		wd := wn * math.Sqrt(1-zeta*zeta)
		return &UnderdampedResponse{
			Decay: zeta * wn,
			Omega: wd,
			C1:    x0,
			C2:    (v0 + zeta*wn*x0) / wd,
		}, nil
	case CriticallyDamped:
		return &CriticalResponse{
			Omega: wn,
			C1:    x0,
			C2:    v0 + wn*x0,
		}, nil
	default:
		s := math.Sqrt(zeta*zeta - 1)
		return &OverdampedResponse{
			R1: (-zeta + s) * wn,
			R2: (-zeta - s) * wn,
			C1: (x0*wn*(zeta+s) + v0) / (2 * s * wn),
			C2: (-x0*wn*(zeta-s) - v0) / (2 * s * wn),
		}, nil
	}
}

// Displacements evaluates the free response over grid.
func (o *Oscillator) Displacements(grid dynamo.Grid) ([]float64, error) {
	resp, err := o.Solve()
	if err != nil {
		return nil, err
	}
	return grid.Map(resp.Displacement), nil
}

// UnderdampedResponse is x(t) = e^{-Decay t}(C1 cos(Omega t) + C2 sin(Omega t)).
type UnderdampedResponse struct {
	Decay  float64
	Omega  float64
	C1, C2 float64
}

func (r *UnderdampedResponse) Regime() Regime { return Underdamped }

func (r *UnderdampedResponse) Displacement(t float64) float64 {
	s, c := math.Sincos(r.Omega * t)
	return math.Exp(-r.Decay*t) * (r.C1*c + r.C2*s)
}

func (r *UnderdampedResponse) Velocity(t float64) float64 {
	s, c := math.Sincos(r.Omega * t)
	a, w := r.Decay, r.Omega
	return math.Exp(-a*t) * ((w*r.C2-a*r.C1)*c - (a*r.C2+w*r.C1)*s)
}

// CriticalResponse is x(t) = (C1 + C2 t) e^{-Omega t}.
type CriticalResponse struct {
	Omega  float64
	C1, C2 float64
}

func (r *CriticalResponse) Regime() Regime { return CriticallyDamped }

func (r *CriticalResponse) Displacement(t float64) float64 {
	return (r.C1 + r.C2*t) * math.Exp(-r.Omega*t)
}

func (r *CriticalResponse) Velocity(t float64) float64 {
	return (r.C2 - r.Omega*(r.C1+r.C2*t)) * math.Exp(-r.Omega*t)
}

// OverdampedResponse is x(t) = C1 e^{R1 t} + C2 e^{R2 t} with the two real
// roots of the characteristic equation.
type OverdampedResponse struct {
	R1, R2 float64
	C1, C2 float64
}

func (r *OverdampedResponse) Regime() Regime { return Overdamped }

func (r *OverdampedResponse) Displacement(t float64) float64 {
	return r.C1*math.Exp(r.R1*t) + r.C2*math.Exp(r.R2*t)
}

func (r *OverdampedResponse) Velocity(t float64) float64 {
	return r.C1*r.R1*math.Exp(r.R1*t) + r.C2*r.R2*math.Exp(r.R2*t)
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      o.Mass,
		"stiffness": o.Stiffness,
		"damping":   o.Damping,
		"x0":        o.X0,
		"v0":        o.V0,
	}
}

func (o *Oscillator) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		o.Mass = value
	case "stiffness":
		o.Stiffness = value
	case "damping":
		o.Damping = value
	case "x0":
		o.X0 = value
	case "v0":
		o.V0 = value
	default:
		return fmt.Errorf("%w: oscillator has no %q", dynamo.ErrUnknownParam, name)
	}
	return nil
}
