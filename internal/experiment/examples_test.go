package experiment

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
)

func TestBuildOscillator_Title(t *testing.T) {
	fig, err := BuildOscillator(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	p := fig.Panels[0]
	want := "Spring Mass System (underdamped). Natural Freq. = 2 [rad/s] (0.318 [Hz])"
	if p.Title != want {
		t.Errorf("title = %q, want %q", p.Title, want)
	}
	if len(p.Series[0].X) != 601 {
		t.Errorf("expected 601 samples, got %d", len(p.Series[0].X))
	}
	if p.Series[0].Y[0] != 0.1 {
		t.Errorf("expected x(0) = 0.1, got %f", p.Series[0].Y[0])
	}
}

func TestBuildOscillator_DoesNotMutateConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := BuildOscillator(cfg, map[string]float64{"duration": 3, "damping": 1}); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if cfg.Oscillator.Duration != config.DefaultDuration || cfg.Oscillator.Damping != 0.2 {
		t.Errorf("config mutated: %+v", cfg.Oscillator)
	}
}

func TestBuildOscillator_InvalidGrid(t *testing.T) {
	tests := []map[string]float64{
		{"duration": 0},
		{"fps": 0},
		{"fps": 2.5},
	}
	for _, overrides := range tests {
		if _, err := BuildOscillator(config.DefaultConfig(), overrides); !errors.Is(err, dynamo.ErrParameterBounds) {
			t.Errorf("%v: expected ErrParameterBounds, got %v", overrides, err)
		}
	}
}

func TestBuildRatio_Grid(t *testing.T) {
	fig, err := BuildRatio(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	s := fig.Panels[0].Series[0]
	if len(s.X) != 101 {
		t.Fatalf("expected 101 points, got %d", len(s.X))
	}
	if s.Y[0] != 1 {
		t.Errorf("expected |M(0)| = 1, got %f", s.Y[0])
	}
	if math.Abs(s.X[len(s.X)-1]-5) > 1e-12 {
		t.Errorf("expected grid to end at 5 rad/s, got %f", s.X[len(s.X)-1])
	}
}

func TestBuildCable_Label(t *testing.T) {
	fig, err := BuildCable(config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	s := fig.Panels[0].Series[0]
	if !strings.HasPrefix(s.Label, "Mode 3 - freq = 53.033") {
		t.Errorf("unexpected label %q", s.Label)
	}
	if len(s.X) != 101 {
		t.Errorf("expected 101 points, got %d", len(s.X))
	}
	if math.Abs(s.Y[len(s.Y)-1]) > 1e-12 {
		t.Errorf("expected fixed end, got %e", s.Y[len(s.Y)-1])
	}
}

func TestRound3(t *testing.T) {
	tests := map[float64]string{
		2:                 "2",
		2 / (2 * math.Pi): "0.318",
		53.03300858899106: "53.033",
		0.0004:            "0",
	}
	for in, want := range tests {
		if got := round3(in); got != want {
			t.Errorf("round3(%v) = %q, want %q", in, got, want)
		}
	}
}
