// Package analysis provides frequency-domain tools for sampled signals.
//
//   - [Synth]: composite multi-tone test signals
//   - [OneSided]: one-sided amplitude spectrum with Nyquist folding
//   - [Reconstruct]: inverse transform of a folded spectrum
//
// # Nyquist folding
//
// A real signal has a conjugate-symmetric transform, so only bins 0..N/2
// are kept. Their magnitudes are doubled, except DC, to account for the
// discarded negative frequencies:
//
//	t, y, _ := analysis.NewTwoTone().Signal()
//	spec, _ := analysis.OneSided(y, 1000)
//	spec.AmplitudeAt(150) // ≈ 3
package analysis
