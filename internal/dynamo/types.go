package dynamo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is an evenly spaced, ordered set of sample points.
type Grid []float64

// Linspace returns n evenly spaced points over [start, stop], both included.
func Linspace(start, stop float64, n int) (Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidGrid, n)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: bounds [%g, %g]", ErrInvalidGrid, start, stop)
	}
	if n == 1 {
		return Grid{start}, nil
	}
	return Grid(floats.Span(make([]float64, n), start, stop)), nil
}

// Step returns the spacing between consecutive points, or 0 for grids
// shorter than two points.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

// Map evaluates fn at every grid point.
func (g Grid) Map(fn func(float64) float64) []float64 {
	out := make([]float64, len(g))
	for i, x := range g {
		out[i] = fn(x)
	}
	return out
}

// Configurable is implemented by models whose parameters can be changed by
// name at runtime.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Series is one curve of a panel.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// Len returns the number of drawable points.
func (s Series) Len() int {
	return min(len(s.X), len(s.Y))
}

// Range is a closed interval used for axis limits.
type Range struct {
	Min, Max float64
}

// Panel is a single set of axes.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	YRange *Range
	Series []Series
}

// Clipped returns a copy of the series with every y value limited to the
// panel's y range. Without a range, non-finite values are replaced by NaN
// so renderers can skip them.
func (p Panel) Clipped() []Series {
	out := make([]Series, len(p.Series))
	for i, s := range p.Series {
		ys := make([]float64, s.Len())
		for j := range ys {
			y := s.Y[j]
			switch {
			case p.YRange != nil && !math.IsNaN(y):
				y = math.Max(p.YRange.Min, math.Min(p.YRange.Max, y))
			case math.IsInf(y, 0):
				y = math.NaN()
			}
			ys[j] = y
		}
		out[i] = Series{Label: s.Label, X: s.X[:len(ys)], Y: ys}
	}
	return out
}

// Bounds returns the min and max of the finite y values of the clipped series.
func (p Panel) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range p.Clipped() {
		for _, y := range s.Y {
			if math.IsNaN(y) {
				continue
			}
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Figure is a named collection of panels, the unit every renderer draws.
type Figure struct {
	Name   string
	Panels []Panel
}

// AddPanel appends p to the figure.
func (f *Figure) AddPanel(p Panel) {
	f.Panels = append(f.Panels, p)
}
