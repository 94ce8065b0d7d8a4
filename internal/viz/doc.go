// Package viz renders figures in the terminal.
//
//   - [Plot]: static asciigraph charts, one per panel
//   - [Animation]: Bubble Tea program that redraws a growing prefix of a
//     precomputed series on a fixed cadence
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the first sample
//	E     - Jump to the end
//	Q     - Quit
package viz
