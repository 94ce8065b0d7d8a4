package config

// Presets holds named variations of the default configuration per example.
var Presets = map[string]map[string]*Config{
	"oscillator": {
		"underdamped": withConfig(func(c *Config) {
			c.Oscillator.Damping = 0.2
		}),
		"undamped": withConfig(func(c *Config) {
			c.Oscillator.Damping = 0
		}),
		"critical": withConfig(func(c *Config) {
			c.Oscillator.Damping = 4
			c.Oscillator.Duration = 10
		}),
		"overdamped": withConfig(func(c *Config) {
			c.Oscillator.Damping = 10
			c.Oscillator.Duration = 10
		}),
		"kicked": withConfig(func(c *Config) {
			c.Oscillator.X0 = 0
			c.Oscillator.V0 = 0.5
		}),
	},
	"spectrum": {
		"two-tone": withConfig(func(c *Config) {}),
		"three-tone": withConfig(func(c *Config) {
			c.Spectrum.Tones = append(c.Spectrum.Tones, ToneConfig{Amplitude: 0.5, Frequency: 300, PhaseDeg: 90})
		}),
		"long-record": withConfig(func(c *Config) {
			c.Spectrum.Cycles = 50
		}),
	},
	"ratio": {
		"default": withConfig(func(c *Config) {}),
		"stiff": withConfig(func(c *Config) {
			c.Ratio.Stiffness = 16
			c.Ratio.MaxFrequency = 10
		}),
		"wide": withConfig(func(c *Config) {
			c.Ratio.MaxFrequency = 20
			c.Ratio.StepsPerUnit = 10
		}),
	},
	"cable": {
		"fundamental": withConfig(func(c *Config) {
			c.Cable.Mode = 1
		}),
		"third": withConfig(func(c *Config) {
			c.Cable.Mode = 3
		}),
		"family": withConfig(func(c *Config) {
			c.Cable.Modes = 4
		}),
	},
}

func withConfig(apply func(*Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(example, preset string) *Config {
	examplePresets, ok := Presets[example]
	if !ok {
		return nil
	}
	cfg, ok := examplePresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(example string) []string {
	examplePresets, ok := Presets[example]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(examplePresets))
	for name := range examplePresets {
		names = append(names, name)
	}
	return names
}
