package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vibelab/internal/analysis"
	"github.com/san-kum/vibelab/internal/physics"
)

const (
	DefaultDuration     = 20.0
	DefaultFPS          = 30
	DefaultMaxFrequency = 5.0
	DefaultStepsPerUnit = 20
	DefaultSegments     = 100
	DefaultRatioLimit   = 15.0
	DefaultPlotWidth    = 80
	DefaultPlotHeight   = 15
)

type Config struct {
	Oscillator OscillatorConfig `yaml:"oscillator"`
	Spectrum   SpectrumConfig   `yaml:"spectrum"`
	Ratio      RatioConfig      `yaml:"ratio"`
	Cable      CableConfig      `yaml:"cable"`
	Plot       PlotConfig       `yaml:"plot"`
}

type OscillatorConfig struct {
	Mass              float64 `yaml:"mass"`
	Stiffness         float64 `yaml:"stiffness"`
	Damping           float64 `yaml:"damping"`
	X0                float64 `yaml:"x0"`
	V0                float64 `yaml:"v0"`
	Duration          float64 `yaml:"duration"`
	FPS               int     `yaml:"fps"`
	CriticalTolerance float64 `yaml:"critical_tolerance"`
}

type ToneConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	PhaseDeg  float64 `yaml:"phase_deg"`
}

type SpectrumConfig struct {
	Tones      []ToneConfig `yaml:"tones"`
	SampleRate float64      `yaml:"sample_rate"`
	Cycles     int          `yaml:"cycles"`
}

type RatioConfig struct {
	Mass         float64 `yaml:"mass"`
	Stiffness    float64 `yaml:"stiffness"`
	MaxFrequency float64 `yaml:"max_frequency"`
	StepsPerUnit int     `yaml:"steps_per_unit"`
	Limit        float64 `yaml:"limit"`
}

type CableConfig struct {
	Length        float64 `yaml:"length"`
	LinearDensity float64 `yaml:"linear_density"`
	Tension       float64 `yaml:"tension"`
	Mode          int     `yaml:"mode"`
	Segments      int     `yaml:"segments"`
	Modes         int     `yaml:"modes"`
}

type PlotConfig struct {
	Render string `yaml:"render"`
	Output string `yaml:"output"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Oscillator: OscillatorConfig{
			Mass:              physics.DefaultMass,
			Stiffness:         physics.DefaultStiffness,
			Damping:           physics.DefaultDamping,
			X0:                physics.DefaultX0,
			V0:                physics.DefaultV0,
			Duration:          DefaultDuration,
			FPS:               DefaultFPS,
			CriticalTolerance: physics.DefaultCriticalTolerance,
		},
		Spectrum: SpectrumConfig{
			Tones: []ToneConfig{
				{Amplitude: 1, Frequency: 50, PhaseDeg: 0},
				{Amplitude: 3, Frequency: 150, PhaseDeg: 45},
			},
			SampleRate: analysis.DefaultSampleRate,
			Cycles:     analysis.DefaultCycles,
		},
		Ratio: RatioConfig{
			Mass:         physics.DefaultMass,
			Stiffness:    physics.DefaultStiffness,
			MaxFrequency: DefaultMaxFrequency,
			StepsPerUnit: DefaultStepsPerUnit,
			Limit:        DefaultRatioLimit,
		},
		Cable: CableConfig{
			Length:        physics.DefaultCableLength,
			LinearDensity: physics.DefaultLinearDensity,
			Tension:       physics.DefaultTension,
			Mode:          physics.DefaultMode,
			Segments:      DefaultSegments,
			Modes:         1,
		},
		Plot: PlotConfig{
			Render: "terminal",
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads the YAML file at path over a copy of base. Keys missing
// from the file keep the values of base.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Spectrum.Tones = append([]ToneConfig(nil), c.Spectrum.Tones...)
	return &cp
}

func (c *Config) GetOscillator() *physics.Oscillator {
	o := c.Oscillator
	return &physics.Oscillator{
		Mass:              o.Mass,
		Stiffness:         o.Stiffness,
		Damping:           o.Damping,
		X0:                o.X0,
		V0:                o.V0,
		CriticalTolerance: o.CriticalTolerance,
	}
}

func (c *Config) GetSynth() *analysis.Synth {
	tones := make([]analysis.Tone, len(c.Spectrum.Tones))
	for i, t := range c.Spectrum.Tones {
		tones[i] = analysis.Tone{
			Amplitude: t.Amplitude,
			Frequency: t.Frequency,
			Phase:     t.PhaseDeg * math.Pi / 180,
		}
	}
	return &analysis.Synth{
		Tones:      tones,
		SampleRate: c.Spectrum.SampleRate,
		Cycles:     c.Spectrum.Cycles,
	}
}

func (c *Config) GetFrequencyResponse() *physics.FrequencyResponse {
	return &physics.FrequencyResponse{Mass: c.Ratio.Mass, Stiffness: c.Ratio.Stiffness}
}

func (c *Config) GetCable() *physics.Cable {
	return &physics.Cable{
		Length:        c.Cable.Length,
		LinearDensity: c.Cable.LinearDensity,
		Tension:       c.Cable.Tension,
		Mode:          c.Cable.Mode,
	}
}
