package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/vibelab/internal/dynamo"
)

func twoToneSpectrum(t *testing.T) (*Synth, []float64, *Spectrum) {
	t.Helper()

	s := NewTwoTone()
	_, y, err := s.Signal()
	if err != nil {
		t.Fatalf("signal failed: %v", err)
	}
	spec, err := OneSided(y, s.SampleRate)
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	return s, y, spec
}

func TestTwoToneSamples(t *testing.T) {
	s := NewTwoTone()
	if n := s.Samples(); n != 200 {
		t.Fatalf("expected 200 samples, got %d", n)
	}

	times, err := s.Times()
	if err != nil {
		t.Fatalf("times failed: %v", err)
	}
	if math.Abs(times.Step()-0.001) > 1e-12 {
		t.Errorf("expected 1 ms spacing, got %g", times.Step())
	}
	if last := times[len(times)-1]; math.Abs(last-0.199) > 1e-12 {
		t.Errorf("expected last sample at 0.199 s, got %g", last)
	}
}

func TestOneSided_TwoTonePeaks(t *testing.T) {
	_, _, spec := twoToneSpectrum(t)

	if len(spec.Amplitudes) != 101 {
		t.Fatalf("expected 101 bins (0..N/2), got %d", len(spec.Amplitudes))
	}
	if spec.Resolution() != 5 {
		t.Errorf("expected 5 Hz resolution, got %f", spec.Resolution())
	}
	if f := spec.Frequencies[len(spec.Frequencies)-1]; f != 500 {
		t.Errorf("expected last bin at Nyquist 500 Hz, got %f", f)
	}

	if a := spec.AmplitudeAt(50); math.Abs(a-1) > 1e-6 {
		t.Errorf("expected amplitude 1 at 50 Hz, got %f", a)
	}
	if a := spec.AmplitudeAt(150); math.Abs(a-3) > 1e-6 {
		t.Errorf("expected amplitude 3 at 150 Hz, got %f", a)
	}

	for k, a := range spec.Amplitudes {
		f := spec.Frequencies[k]
		if f == 50 || f == 150 {
			continue
		}
		if a > 1e-6 {
			t.Errorf("unexpected content %e at %f Hz", a, f)
		}
	}

	peaks := spec.Peaks(2)
	if len(peaks) != 2 {
		t.Fatalf("expected 2 peaks, got %d", len(peaks))
	}
	if peaks[0].Frequency != 150 || peaks[1].Frequency != 50 {
		t.Errorf("unexpected peak order: %+v", peaks)
	}
	if spec.DominantFrequency() != 150 {
		t.Errorf("expected dominant frequency 150 Hz, got %f", spec.DominantFrequency())
	}
}

func TestOneSided_DCNotDoubled(t *testing.T) {
	const n = 200
	y := make([]float64, n)
	for i := range y {
		y[i] = 0.5 + math.Sin(2*math.Pi*50*float64(i)/1000)
	}

	spec, err := OneSided(y, 1000)
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	if math.Abs(spec.Amplitudes[0]-0.5) > 1e-9 {
		t.Errorf("expected DC amplitude 0.5, got %f", spec.Amplitudes[0])
	}
	if math.Abs(spec.AmplitudeAt(50)-1) > 1e-9 {
		t.Errorf("expected amplitude 1 at 50 Hz, got %f", spec.AmplitudeAt(50))
	}
}

func TestOneSided_OddLength(t *testing.T) {
	y := make([]float64, 9)
	for i := range y {
		y[i] = float64(i)
	}
	spec, err := OneSided(y, 9)
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	if len(spec.Amplitudes) != 5 {
		t.Errorf("expected 5 bins for N=9, got %d", len(spec.Amplitudes))
	}
}

func TestOneSided_Invalid(t *testing.T) {
	if _, err := OneSided([]float64{1, 2, 3}, 0); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for zero sample rate, got %v", err)
	}
	if _, err := OneSided([]float64{1}, 1000); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for single sample, got %v", err)
	}
}

func TestReconstruct_RoundTrip(t *testing.T) {
	_, y, spec := twoToneSpectrum(t)

	rebuilt := Reconstruct(spec)
	if len(rebuilt) != len(y) {
		t.Fatalf("expected %d samples, got %d", len(y), len(rebuilt))
	}
	for i := range y {
		if math.Abs(rebuilt[i]-y[i]) > 1e-9 {
			t.Fatalf("sample %d: got %f, want %f", i, rebuilt[i], y[i])
		}
	}
}

func TestReconstruct_OddLength(t *testing.T) {
	y := []float64{0.3, -1.2, 2.5, 0, 4.1, -0.7, 1.9}
	spec, err := OneSided(y, 7)
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	rebuilt := Reconstruct(spec)
	for i := range y {
		if math.Abs(rebuilt[i]-y[i]) > 1e-9 {
			t.Errorf("sample %d: got %f, want %f", i, rebuilt[i], y[i])
		}
	}
}

func TestSynthValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Synth)
	}{
		{"zero sample rate", func(s *Synth) { s.SampleRate = 0 }},
		{"negative sample rate", func(s *Synth) { s.SampleRate = -1000 }},
		{"no tones", func(s *Synth) { s.Tones = nil }},
		{"zero first frequency", func(s *Synth) { s.Tones[0].Frequency = 0 }},
		{"zero cycles", func(s *Synth) { s.Cycles = 0 }},
		{"too few samples", func(s *Synth) { s.SampleRate = 50; s.Cycles = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTwoTone()
			tt.apply(s)
			if _, _, err := s.Signal(); !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestSynthParams(t *testing.T) {
	s := NewTwoTone()

	if err := s.SetParam("amplitude2", 5); err != nil {
		t.Fatalf("set amplitude2: %v", err)
	}
	if s.Tones[1].Amplitude != 5 {
		t.Errorf("expected amplitude 5, got %f", s.Tones[1].Amplitude)
	}
	if err := s.SetParam("frequency1", 25); err != nil {
		t.Fatalf("set frequency1: %v", err)
	}
	if n := s.Samples(); n != 400 {
		t.Errorf("expected 400 samples after halving f1, got %d", n)
	}
	if s.GetParams()["phase2"] != math.Pi/4 {
		t.Error("phase2 not reported")
	}

	for _, name := range []string{"amplitude3", "amplitude0", "tension"} {
		if err := s.SetParam(name, 1); !errors.Is(err, dynamo.ErrUnknownParam) {
			t.Errorf("%s: expected ErrUnknownParam, got %v", name, err)
		}
	}
}
