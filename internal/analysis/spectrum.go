package analysis

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/vibelab/internal/dynamo"
)

// Spectrum is the one-sided amplitude spectrum of a real signal.
//
// Bins holds the raw DFT coefficients for indices 0..N/2 so the signal can
// be rebuilt with its phase. Amplitudes are |X[k]|/N, doubled for every
// index except DC.
type Spectrum struct {
	N           int
	SampleRate  float64
	Frequencies []float64
	Amplitudes  []float64
	Bins        []complex128
}

// OneSided transforms signal and folds it to the non-negative frequencies.
func OneSided(signal []float64, sampleRate float64) (*Spectrum, error) {
	if err := dynamo.RequirePositive("sample_rate", sampleRate); err != nil {
		return nil, err
	}
	n := len(signal)
	if n < 2 {
		return nil, &dynamo.ParameterError{Name: "samples", Value: float64(n), Reason: "signal needs at least 2 samples"}
	}

	coeffs := fft.FFTReal(signal)

	half := n/2 + 1
	spec := &Spectrum{
		N:           n,
		SampleRate:  sampleRate,
		Frequencies: make([]float64, half),
		Amplitudes:  make([]float64, half),
		Bins:        make([]complex128, half),
	}

	df := sampleRate / float64(n)
	for k := 0; k < half; k++ {
		amp := cmplx.Abs(coeffs[k]) / float64(n)
		if k > 0 {
			amp *= 2
		}
		spec.Frequencies[k] = float64(k) * df
		spec.Amplitudes[k] = amp
		spec.Bins[k] = coeffs[k]
	}

	return spec, nil
}

// Resolution returns the bin spacing in Hz.
func (s *Spectrum) Resolution() float64 {
	return s.SampleRate / float64(s.N)
}

// AmplitudeAt returns the amplitude of the bin nearest to freq.
func (s *Spectrum) AmplitudeAt(freq float64) float64 {
	k := int(math.Round(freq / s.Resolution()))
	if k < 0 || k >= len(s.Amplitudes) {
		return 0
	}
	return s.Amplitudes[k]
}

// Peak is a local maximum of the amplitude spectrum.
type Peak struct {
	Frequency float64
	Amplitude float64
}

// Peaks returns up to n local maxima above DC, largest first.
func (s *Spectrum) Peaks(n int) []Peak {
	var peaks []Peak
	a := s.Amplitudes
	for k := 1; k < len(a); k++ {
		left := a[k-1]
		right := 0.0
		if k+1 < len(a) {
			right = a[k+1]
		}
		if a[k] > left && a[k] >= right {
			peaks = append(peaks, Peak{Frequency: s.Frequencies[k], Amplitude: a[k]})
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Amplitude > peaks[j].Amplitude })
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

// DominantFrequency returns the frequency of the largest non-DC bin.
func (s *Spectrum) DominantFrequency() float64 {
	best, idx := 0.0, 0
	for k := 1; k < len(s.Amplitudes); k++ {
		if s.Amplitudes[k] > best {
			best, idx = s.Amplitudes[k], k
		}
	}
	return s.Frequencies[idx]
}

// Reconstruct rebuilds the time signal from the retained bins. The
// negative-frequency half is restored by conjugate symmetry, so the result
// matches the transformed signal to rounding error. Amplitudes alone carry no
// phase and cannot be inverted.
func Reconstruct(s *Spectrum) []float64 {
	full := make([]complex128, s.N)
	copy(full, s.Bins)
	for k := 1; k < len(s.Bins); k++ {
		full[s.N-k] = cmplx.Conj(s.Bins[k])
	}

	x := fft.IFFT(full)
	out := make([]float64, s.N)
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}
