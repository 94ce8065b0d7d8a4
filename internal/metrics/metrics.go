// Package metrics summarizes a sampled oscillator response.
package metrics

// Metric accumulates one scalar over the samples of a response.
type Metric interface {
	Name() string
	Observe(t, x, v float64)
	Value() float64
	Reset()
}

// Evaluate feeds every sample to each metric and returns the values by name.
func Evaluate(times, x, v []float64, ms ...Metric) map[string]float64 {
	n := min(len(times), len(x), len(v))
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := 0; i < n; i++ {
			m.Observe(times[i], x[i], v[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}
