package experiment

import (
	"context"
	"fmt"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
)

// Experiment evaluates one example against a configuration and a set of
// named parameter overrides.
type Experiment struct {
	example   Example
	cfg       *config.Config
	overrides map[string]float64
}

func New(example Example, cfg *config.Config, overrides map[string]float64) *Experiment {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Experiment{
		example:   example,
		cfg:       cfg.Clone(),
		overrides: overrides,
	}
}

// Run builds the example's figure.
func (e *Experiment) Run(ctx context.Context) (*dynamo.Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	logger := log.WithField("example", e.example.Name)
	logger.WithField("overrides", e.overrides).Debug("Experiment started")

	fig, err := e.example.Build(e.cfg, e.overrides)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.example.Name, err)
	}

	logger.WithFields(log.Fields{
		"panels": len(fig.Panels),
		"time":   time.Since(start),
	}).Debug("Experiment finished")
	return fig, nil
}

// Config returns the experiment's private copy of the configuration.
func (e *Experiment) Config() *config.Config {
	return e.cfg
}

// applyParams splits overrides into grid settings, handled by settings, and
// model parameters, passed to model.SetParam. Names are applied in sorted
// order so errors are reproducible.
func applyParams(model dynamo.Configurable, overrides map[string]float64, settings map[string]func(float64) error) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		value := overrides[name]
		if set, ok := settings[name]; ok {
			if err := set(value); err != nil {
				return err
			}
			continue
		}
		if err := model.SetParam(name, value); err != nil {
			return err
		}
		log.WithFields(log.Fields{"param": name, "value": value}).Debug("Parameter override")
	}
	return nil
}

func setInt(dst *int, name string) func(float64) error {
	return func(v float64) error {
		if v != float64(int(v)) {
			return &dynamo.ParameterError{Name: name, Value: v, Reason: "must be an integer"}
		}
		*dst = int(v)
		return nil
	}
}

func setFloat(dst *float64) func(float64) error {
	return func(v float64) error {
		*dst = v
		return nil
	}
}
