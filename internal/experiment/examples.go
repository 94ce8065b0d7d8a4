package experiment

import (
	"fmt"
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/vibelab/internal/analysis"
	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
	"github.com/san-kum/vibelab/internal/metrics"
)

// BuildOscillator plots the free response x(t) of the damped oscillator.
func BuildOscillator(cfg *config.Config, overrides map[string]float64) (*dynamo.Figure, error) {
	oc := cfg.Oscillator
	osc := cfg.GetOscillator()
	err := applyParams(osc, overrides, map[string]func(float64) error{
		"duration":           setFloat(&oc.Duration),
		"fps":                setInt(&oc.FPS, "fps"),
		"critical_tolerance": setFloat(&osc.CriticalTolerance),
	})
	if err != nil {
		return nil, err
	}
	if err := dynamo.RequirePositive("duration", oc.Duration); err != nil {
		return nil, err
	}
	if oc.FPS < 1 {
		return nil, &dynamo.ParameterError{Name: "fps", Value: float64(oc.FPS), Reason: "must be at least 1"}
	}

	grid, err := dynamo.Linspace(0, oc.Duration, int(oc.Duration*float64(oc.FPS))+1)
	if err != nil {
		return nil, err
	}
	resp, err := osc.Solve()
	if err != nil {
		return nil, err
	}

	wn := osc.NaturalFrequency()
	x := grid.Map(resp.Displacement)
	summary := metrics.Evaluate(grid, x, grid.Map(resp.Velocity),
		metrics.NewEnergy(osc.Mass, osc.Stiffness),
		metrics.NewEnergyLoss(osc.Mass, osc.Stiffness),
		metrics.NewPeakDisplacement(),
		metrics.NewSettlingTime(metrics.DefaultSettlingBand),
	)
	log.WithFields(log.Fields{
		"zeta":   osc.DampingRatio(),
		"omegaN": wn,
		"regime": resp.Regime(),
	}).Info("Oscillator solved")
	log.WithFields(log.Fields{
		"energy":     summary["energy"],
		"energyLoss": summary["energy_loss"],
		"peak":       summary["peak_displacement"],
		"settling":   summary["settling_time"],
	}).Debug("Response metrics")

	fig := &dynamo.Figure{Name: "Mass Spring System"}
	fig.AddPanel(dynamo.Panel{
		Title: fmt.Sprintf("Spring Mass System (%s). Natural Freq. = %s [rad/s] (%s [Hz])",
			resp.Regime(), round3(wn), round3(osc.NaturalFrequencyHz())),
		XLabel: "time [seconds]",
		YLabel: "x (m)",
		Series: []dynamo.Series{{Label: "solution", X: grid, Y: x}},
	})
	return fig, nil
}

// BuildSpectrum plots a synthetic multi-tone signal and its one-sided
// amplitude spectrum.
func BuildSpectrum(cfg *config.Config, overrides map[string]float64) (*dynamo.Figure, error) {
	synth := cfg.GetSynth()
	if err := applyParams(synth, overrides, nil); err != nil {
		return nil, err
	}

	t, y, err := synth.Signal()
	if err != nil {
		return nil, err
	}
	spec, err := analysis.OneSided(y, synth.SampleRate)
	if err != nil {
		return nil, err
	}

	for _, p := range spec.Peaks(len(synth.Tones)) {
		log.WithFields(log.Fields{
			"frequency": p.Frequency,
			"amplitude": p.Amplitude,
		}).Info("Spectral peak")
	}

	fig := &dynamo.Figure{Name: "Time vs Frequency Domain"}
	fig.AddPanel(dynamo.Panel{
		Title:  "Time Signal",
		XLabel: "time [s]",
		YLabel: "x [m]",
		Series: []dynamo.Series{{Label: "signal", X: t, Y: y}},
	})
	fig.AddPanel(dynamo.Panel{
		Title:  "Frequency Content",
		XLabel: "frequency [Hz]",
		YLabel: "amplitude [m]",
		Series: []dynamo.Series{{Label: "amplitude", X: spec.Frequencies, Y: spec.Amplitudes}},
	})
	return fig, nil
}

// BuildRatio plots the dynamic magnification ratio |M| against forcing
// frequency.
func BuildRatio(cfg *config.Config, overrides map[string]float64) (*dynamo.Figure, error) {
	rc := cfg.Ratio
	fr := cfg.GetFrequencyResponse()
	err := applyParams(fr, overrides, map[string]func(float64) error{
		"max_frequency":  setFloat(&rc.MaxFrequency),
		"steps_per_unit": setInt(&rc.StepsPerUnit, "steps_per_unit"),
		"limit":          setFloat(&rc.Limit),
	})
	if err != nil {
		return nil, err
	}
	if err := dynamo.RequirePositive("max_frequency", rc.MaxFrequency); err != nil {
		return nil, err
	}
	if rc.StepsPerUnit < 1 {
		return nil, &dynamo.ParameterError{Name: "steps_per_unit", Value: float64(rc.StepsPerUnit), Reason: "must be at least 1"}
	}
	if err := dynamo.RequirePositive("limit", rc.Limit); err != nil {
		return nil, err
	}

	grid, err := dynamo.Linspace(0, rc.MaxFrequency, int(rc.MaxFrequency*float64(rc.StepsPerUnit))+1)
	if err != nil {
		return nil, err
	}
	ratios, err := fr.Ratios(grid)
	if err != nil {
		return nil, err
	}

	if poles := countInf(ratios); poles > 0 {
		log.WithFields(log.Fields{
			"omegaN": fr.NaturalFrequency(),
			"points": poles,
		}).Warn("Grid hits resonance; ratio is unbounded there")
	}

	fig := &dynamo.Figure{Name: "Amplitude Ratio (undamped)"}
	fig.AddPanel(dynamo.Panel{
		Title:  "Amplitude Ratio",
		XLabel: "frequency [rad/s]",
		YLabel: "|M|",
		YRange: &dynamo.Range{Min: 0, Max: rc.Limit},
		Series: []dynamo.Series{{Label: "|M|", X: grid, Y: ratios}},
	})
	return fig, nil
}

// BuildCable plots the mode shape of the tensioned cable. With modes > 1,
// modes 1..modes are overlaid instead of the configured single mode.
func BuildCable(cfg *config.Config, overrides map[string]float64) (*dynamo.Figure, error) {
	cc := cfg.Cable
	cable := cfg.GetCable()
	err := applyParams(cable, overrides, map[string]func(float64) error{
		"segments": setInt(&cc.Segments, "segments"),
		"modes":    setInt(&cc.Modes, "modes"),
	})
	if err != nil {
		return nil, err
	}

	grid, err := cable.Grid(cc.Segments)
	if err != nil {
		return nil, err
	}

	modes := []int{cable.Mode}
	if cc.Modes > 1 {
		modes = modes[:0]
		for n := 1; n <= cc.Modes; n++ {
			modes = append(modes, n)
		}
	}

	panel := dynamo.Panel{Title: "Tensioned Cable", XLabel: "x [m]", YLabel: "displacement"}
	for _, n := range modes {
		cable.Mode = n
		shape, err := cable.Shape(grid)
		if err != nil {
			return nil, err
		}
		freq := cable.NaturalFrequency()
		if taut := cable.StringFrequency(); math.Abs(freq-taut) > 1e-9*freq {
			log.WithFields(log.Fields{
				"mode":       n,
				"reported":   freq,
				"tautString": taut,
			}).Warn("Cable frequency formula scales with length; taut-string value differs")
		}
		panel.Series = append(panel.Series, dynamo.Series{
			Label: fmt.Sprintf("Mode %d - freq = %s [Hz]", n, round3(freq)),
			X:     grid,
			Y:     shape,
		})
	}

	fig := &dynamo.Figure{Name: "Tensioned Cable"}
	fig.AddPanel(panel)
	return fig, nil
}

func countInf(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

func round3(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
