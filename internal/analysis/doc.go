// Package analysis provides chaos and signal analysis for pendulum runs.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [PowerSpectrum]: magnitude spectrum of a sampled series
//   - [DominantFrequency]: strongest oscillation frequency of a series
//   - [GeneratePhasePortrait], [GeneratePoincareSection]: phase space views
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(dyn, integ, x0, dt, steps, 1e-9)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
