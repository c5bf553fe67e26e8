// Package viz provides terminal-based visualization for the double pendulum.
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Model]: a read-only Bubble Tea live view of a running pendulum
//   - [Plot], [PlotMany]: asciigraph charts for bounded runs
//
// # Key Bindings
//
//	Q, Esc, Ctrl+C - Quit
package viz
