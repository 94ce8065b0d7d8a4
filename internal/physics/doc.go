// Package physics provides closed-form vibration models.
//
//   - [Oscillator]: free response of a damped mass-spring system, selected
//     once per damping [Regime]
//   - [FrequencyResponse]: dynamic magnification of an undamped system
//   - [Cable]: mode shapes and natural frequency of a tensioned cable
//
// Every model validates its parameters before evaluation and implements
// [dynamo.Configurable] so the CLI can override values by name.
//
//	osc := physics.NewOscillator()
//	resp, err := osc.Solve()
//	if err != nil {
//	    return err
//	}
//	x := resp.Displacement(1.5)
package physics
