package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
)

// BuildFunc evaluates an example into a figure.
type BuildFunc func(cfg *config.Config, overrides map[string]float64) (*dynamo.Figure, error)

type Example struct {
	Name        string
	Description string
	Build       BuildFunc
}

type Registry struct {
	examples map[string]Example
}

func NewRegistry() *Registry {
	r := &Registry{examples: make(map[string]Example)}

	r.Register(Example{Name: "oscillator", Description: "free response of a damped mass-spring system", Build: BuildOscillator})
	r.Register(Example{Name: "spectrum", Description: "one-sided amplitude spectrum of a two-tone signal", Build: BuildSpectrum})
	r.Register(Example{Name: "ratio", Description: "amplitude ratio of an undamped system vs forcing frequency", Build: BuildRatio})
	r.Register(Example{Name: "cable", Description: "mode shape of a tensioned cable", Build: BuildCable})

	return r
}

func (r *Registry) Register(ex Example) {
	r.examples[ex.Name] = ex
}

func (r *Registry) Get(name string) (Example, error) {
	ex, ok := r.examples[name]
	if !ok {
		return Example{}, fmt.Errorf("%w: %s", dynamo.ErrUnknownExample, name)
	}
	return ex, nil
}

func (r *Registry) List() []Example {
	out := make([]Example, 0, len(r.examples))
	for _, ex := range r.examples {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
