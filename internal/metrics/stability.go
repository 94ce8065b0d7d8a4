package metrics

import "math"

const DefaultSettlingBand = 0.02

// PeakDisplacement is the largest |x| observed.
type PeakDisplacement struct {
	peak float64
}

func NewPeakDisplacement() *PeakDisplacement {
	return &PeakDisplacement{}
}

func (p *PeakDisplacement) Name() string { return "peak_displacement" }

func (p *PeakDisplacement) Observe(t, x, v float64) {
	p.peak = math.Max(p.peak, math.Abs(x))
}

func (p *PeakDisplacement) Value() float64 { return p.peak }

func (p *PeakDisplacement) Reset() { p.peak = 0 }

// SettlingTime is the last time |x| was outside band times the peak |x|.
// A response that never settles within the record reports the final time.
type SettlingTime struct {
	band    float64
	samples []float64
	times   []float64
}

func NewSettlingTime(band float64) *SettlingTime {
	if band <= 0 {
		band = DefaultSettlingBand
	}
	return &SettlingTime{band: band}
}

func (s *SettlingTime) Name() string { return "settling_time" }

func (s *SettlingTime) Observe(t, x, v float64) {
	s.times = append(s.times, t)
	s.samples = append(s.samples, math.Abs(x))
}

func (s *SettlingTime) Value() float64 {
	peak := 0.0
	for _, x := range s.samples {
		peak = math.Max(peak, x)
	}
	if peak == 0 {
		return 0
	}
	limit := s.band * peak
	for i := len(s.samples) - 1; i >= 0; i-- {
		if s.samples[i] > limit {
			return s.times[i]
		}
	}
	return 0
}

func (s *SettlingTime) Reset() {
	s.samples = s.samples[:0]
	s.times = s.times[:0]
}
