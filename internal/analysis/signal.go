package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const (
	DefaultSampleRate = 1000.0
	DefaultCycles     = 10
)

// Tone is one sinusoidal component A·sin(2πft + φ).
type Tone struct {
	Amplitude float64
	Frequency float64 // Hz
	Phase     float64 // rad
}

func (t Tone) At(x float64) float64 {
	return t.Amplitude * math.Sin(2*math.Pi*t.Frequency*x+t.Phase)
}

// Synth builds a composite signal from tones sampled at SampleRate. The
// record length spans Cycles periods of the first tone.
type Synth struct {
	Tones      []Tone
	SampleRate float64
	Cycles     int
}

// NewTwoTone returns 1 m at 50 Hz plus 3 m at 150 Hz with a 45° phase
// shift, sampled at 1 kHz over ten periods of the first tone.
func NewTwoTone() *Synth {
	return &Synth{
		Tones: []Tone{
			{Amplitude: 1, Frequency: 50, Phase: 0},
			{Amplitude: 3, Frequency: 150, Phase: math.Pi / 4},
		},
		SampleRate: DefaultSampleRate,
		Cycles:     DefaultCycles,
	}
}

func (s *Synth) Validate() error {
	if err := dynamo.RequirePositive("sample_rate", s.SampleRate); err != nil {
		return err
	}
	if len(s.Tones) == 0 {
		return &dynamo.ParameterError{Name: "tones", Value: 0, Reason: "at least one tone required"}
	}
	if err := dynamo.RequirePositive("frequency", s.Tones[0].Frequency); err != nil {
		return err
	}
	for i, t := range s.Tones {
		if err := dynamo.RequireFinite(fmt.Sprintf("tones[%d].amplitude", i), t.Amplitude); err != nil {
			return err
		}
		if err := dynamo.RequireFinite(fmt.Sprintf("tones[%d].frequency", i), t.Frequency); err != nil {
			return err
		}
		if err := dynamo.RequireFinite(fmt.Sprintf("tones[%d].phase", i), t.Phase); err != nil {
			return err
		}
	}
	if s.Cycles < 1 {
		return &dynamo.ParameterError{Name: "cycles", Value: float64(s.Cycles), Reason: "must be at least 1"}
	}
	if n := s.Samples(); n < 2 {
		return &dynamo.ParameterError{Name: "samples", Value: float64(n), Reason: "record needs at least 2 samples"}
	}
	return nil
}

// Samples returns N = Cycles · int(SampleRate / f1).
func (s *Synth) Samples() int {
	if len(s.Tones) == 0 || s.Tones[0].Frequency <= 0 {
		return 0
	}
	return s.Cycles * int(s.SampleRate/s.Tones[0].Frequency)
}

// Times returns the N sample instants starting at 0 with spacing 1/SampleRate.
func (s *Synth) Times() (dynamo.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := s.Samples()
	return dynamo.Linspace(0, float64(n-1)/s.SampleRate, n)
}

// Signal samples the sum of all tones on Times.
func (s *Synth) Signal() (dynamo.Grid, []float64, error) {
	t, err := s.Times()
	if err != nil {
		return nil, nil, err
	}
	y := t.Map(func(x float64) float64 {
		sum := 0.0
		for _, tone := range s.Tones {
			sum += tone.At(x)
		}
		return sum
	})
	return t, y, nil
}

func (s *Synth) GetParams() map[string]float64 {
	params := map[string]float64{
		"sample_rate": s.SampleRate,
		"cycles":      float64(s.Cycles),
	}
	for i, t := range s.Tones {
		params[fmt.Sprintf("amplitude%d", i+1)] = t.Amplitude
		params[fmt.Sprintf("frequency%d", i+1)] = t.Frequency
		params[fmt.Sprintf("phase%d", i+1)] = t.Phase
	}
	return params
}

func (s *Synth) SetParam(name string, value float64) error {
	switch name {
	case "sample_rate":
		s.SampleRate = value
		return nil
	case "cycles":
		if value != math.Trunc(value) {
			return &dynamo.ParameterError{Name: name, Value: value, Reason: "must be an integer"}
		}
		s.Cycles = int(value)
		return nil
	}

	var field string
	var idx int
	for _, prefix := range []string{"amplitude", "frequency", "phase"} {
		if n, err := fmt.Sscanf(name, prefix+"%d", &idx); err == nil && n == 1 {
			field = prefix
			break
		}
	}
	if field == "" || idx < 1 || idx > len(s.Tones) {
		return fmt.Errorf("%w: spectrum has no %q", dynamo.ErrUnknownParam, name)
	}

	tone := &s.Tones[idx-1]
	switch field {
	case "amplitude":
		tone.Amplitude = value
	case "frequency":
		tone.Frequency = value
	case "phase":
		tone.Phase = value
	}
	return nil
}
