// Package dynamo provides the shared primitives used by every vibration
// example:
//
//   - [Grid]: evenly spaced sample points (time, space or frequency)
//   - [Figure], [Panel], [Series]: what a computation hands to a renderer
//   - [Configurable]: runtime parameter access for CLI overrides
//   - [ParameterError]: precondition failures reported to the caller
//
// # Example
//
//	t, _ := dynamo.Linspace(0, 20, 601)
//	fig := &dynamo.Figure{Name: "Mass Spring System"}
//	fig.AddPanel(dynamo.Panel{Title: "x(t)", Series: []dynamo.Series{{X: t, Y: y}}})
//
// Nothing in this package holds process-wide state.
package dynamo
