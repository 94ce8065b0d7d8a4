package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/vibelab/internal/dynamo"
)

func TestCableFrequencies(t *testing.T) {
	c := NewCable()
	speed := math.Sqrt(DefaultTension / DefaultLinearDensity)

	want := 3.0 / 2 * 5 * speed
	if f := c.NaturalFrequency(); math.Abs(f-want) > 1e-9 {
		t.Errorf("expected %f Hz, got %f", want, f)
	}

	want = 3.0 / 10 * speed
	if f := c.StringFrequency(); math.Abs(f-want) > 1e-9 {
		t.Errorf("expected string frequency %f Hz, got %f", want, f)
	}
}

func TestCableModeShape_FixedEnds(t *testing.T) {
	for mode := 1; mode <= 8; mode++ {
		c := NewCable()
		c.Mode = mode

		grid, err := c.Grid(100)
		if err != nil {
			t.Fatalf("grid: %v", err)
		}
		shape, err := c.Shape(grid)
		if err != nil {
			t.Fatalf("shape: %v", err)
		}

		if shape[0] != 0 {
			t.Errorf("mode %d: shape(0) = %e", mode, shape[0])
		}
		if last := shape[len(shape)-1]; math.Abs(last) > 1e-12 {
			t.Errorf("mode %d: shape(L) = %e", mode, last)
		}
		for i, v := range shape {
			if math.Abs(v) > 1+1e-12 {
				t.Errorf("mode %d: |shape[%d]| = %f exceeds 1", mode, i, v)
			}
		}
	}
}

func TestCableModeShape_Antinode(t *testing.T) {
	c := NewCable()
	c.Mode = 1
	if v := c.ModeShape(c.Length / 2); math.Abs(v-1) > 1e-12 {
		t.Errorf("fundamental should peak at midspan, got %f", v)
	}
}

func TestCableValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Cable)
	}{
		{"zero length", func(c *Cable) { c.Length = 0 }},
		{"negative length", func(c *Cable) { c.Length = -5 }},
		{"zero density", func(c *Cable) { c.LinearDensity = 0 }},
		{"negative tension", func(c *Cable) { c.Tension = -1 }},
		{"mode zero", func(c *Cable) { c.Mode = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCable()
			tt.apply(c)
			if _, err := c.Shape(dynamo.Grid{0, 1}); !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}

	if _, err := NewCable().Grid(0); !errors.Is(err, dynamo.ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestCableSetParam(t *testing.T) {
	c := NewCable()
	if err := c.SetParam("mode", 2); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if c.Mode != 2 {
		t.Errorf("expected mode 2, got %d", c.Mode)
	}
	if err := c.SetParam("mode", 2.5); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for fractional mode, got %v", err)
	}
	if err := c.SetParam("stiffness", 1); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
