package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/vibelab/internal/dynamo"
)

func oscillatorWithDamping(c float64) *Oscillator {
	o := NewOscillator()
	o.Damping = c
	o.V0 = 0.3
	return o
}

func TestOscillatorDefaults(t *testing.T) {
	o := NewOscillator()

	if wn := o.NaturalFrequency(); wn != 2 {
		t.Errorf("expected ω_n = 2, got %f", wn)
	}
	if zeta := o.DampingRatio(); math.Abs(zeta-0.05) > 1e-12 {
		t.Errorf("expected ζ = 0.05, got %f", zeta)
	}
	if o.Regime() != Underdamped {
		t.Errorf("expected underdamped, got %s", o.Regime())
	}
}

func TestOscillatorRegimes(t *testing.T) {
	tests := []struct {
		damping float64
		regime  Regime
	}{
		{0, Underdamped},
		{0.2, Underdamped},
		{4, CriticallyDamped},
		{4 + 1e-12, CriticallyDamped},
		{10, Overdamped},
	}

	for _, tt := range tests {
		t.Run(tt.regime.String(), func(t *testing.T) {
			resp, err := oscillatorWithDamping(tt.damping).Solve()
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}
			if resp.Regime() != tt.regime {
				t.Errorf("damping %g: expected %s, got %s", tt.damping, tt.regime, resp.Regime())
			}
		})
	}
}

func TestOscillatorInitialConditions(t *testing.T) {
	const h = 1e-6

	for _, c := range []float64{0.2, 4, 10} {
		o := oscillatorWithDamping(c)
		resp, err := o.Solve()
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}

		if x := resp.Displacement(0); math.Abs(x-o.X0) > 1e-12 {
			t.Errorf("%s: x(0) = %f, want %f", resp.Regime(), x, o.X0)
		}
		if v := resp.Velocity(0); math.Abs(v-o.V0) > 1e-12 {
			t.Errorf("%s: analytic v(0) = %f, want %f", resp.Regime(), v, o.V0)
		}

		numeric := (resp.Displacement(h) - resp.Displacement(-h)) / (2 * h)
		if math.Abs(numeric-o.V0) > 1e-6 {
			t.Errorf("%s: numerical v(0) = %f, want %f", resp.Regime(), numeric, o.V0)
		}
	}
}

func TestOscillatorVelocityMatchesDerivative(t *testing.T) {
	const h = 1e-6

	for _, c := range []float64{0.2, 4, 10} {
		resp, _ := oscillatorWithDamping(c).Solve()
		for _, ti := range []float64{0.5, 1.7, 4.2} {
			numeric := (resp.Displacement(ti+h) - resp.Displacement(ti-h)) / (2 * h)
			if math.Abs(numeric-resp.Velocity(ti)) > 1e-6 {
				t.Errorf("%s at t=%.1f: velocity %f, derivative %f", resp.Regime(), ti, resp.Velocity(ti), numeric)
			}
		}
	}
}

func TestOscillatorDecay(t *testing.T) {
	for _, c := range []float64{0.2, 4, 10} {
		resp, _ := oscillatorWithDamping(c).Solve()
		if x := resp.Displacement(300); math.Abs(x) > 1e-6 {
			t.Errorf("%s: expected decay to 0, got %e", resp.Regime(), x)
		}
	}
}

func TestOscillatorUndampedKeepsAmplitude(t *testing.T) {
	o := oscillatorWithDamping(0)
	o.V0 = 0
	resp, _ := o.Solve()

	period := 2 * math.Pi / o.NaturalFrequency()
	if x := resp.Displacement(10 * period); math.Abs(x-o.X0) > 1e-9 {
		t.Errorf("undamped response should repeat every period, got %f", x)
	}
}

func TestOscillatorDisplacements(t *testing.T) {
	grid, _ := dynamo.Linspace(0, 20, 601)
	x, err := NewOscillator().Displacements(grid)
	if err != nil {
		t.Fatalf("displacements failed: %v", err)
	}
	if len(x) != len(grid) {
		t.Fatalf("expected %d samples, got %d", len(grid), len(x))
	}
	if x[0] != DefaultX0 {
		t.Errorf("expected first sample %f, got %f", DefaultX0, x[0])
	}
	peak := 0.0
	for _, v := range x[len(x)/2:] {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak >= DefaultX0 {
		t.Errorf("second half should have decayed below x0, peak %f", peak)
	}
}

func TestOscillatorValidation(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value float64
	}{
		{"negative mass", "mass", -1},
		{"zero mass", "mass", 0},
		{"zero stiffness", "stiffness", 0},
		{"negative damping", "damping", -0.1},
		{"nan x0", "x0", math.NaN()},
		{"inf v0", "v0", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOscillator()
			if err := o.SetParam(tt.param, tt.value); err != nil {
				t.Fatalf("set param: %v", err)
			}
			_, err := o.Solve()
			if !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Fatalf("expected ErrParameterBounds, got %v", err)
			}
			var pe *dynamo.ParameterError
			if errors.As(err, &pe) && pe.Name != tt.param {
				t.Errorf("expected error on %s, got %s", tt.param, pe.Name)
			}
		})
	}
}

func TestOscillatorParams(t *testing.T) {
	o := NewOscillator()
	if err := o.SetParam("damping", 4); err != nil {
		t.Fatalf("set damping: %v", err)
	}
	if o.GetParams()["damping"] != 4 {
		t.Error("damping not updated")
	}
	if err := o.SetParam("length", 1); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
