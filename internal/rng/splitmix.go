// Package rng provides the deterministic generator used to draw initial
// conditions.
package rng

import "math"

const golden = 0x9e3779b97f4a7c15

// SplitMix64 is a 64-bit splitmix generator. The zero value is a valid
// generator seeded with 0. It is not safe for concurrent use.
type SplitMix64 struct {
	state uint64
}

func New(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Seed resets the generator.
func (r *SplitMix64) Seed(seed uint64) { r.state = seed }

// State returns the current counter, so a generator can be resumed with New.
func (r *SplitMix64) State() uint64 { return r.state }

func (r *SplitMix64) Uint64() uint64 {
	r.state += golden
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uniform maps one draw onto [0, 1] by dividing by the largest uint64.
// float64(MaxUint64) rounds to 2^64, so only draws within 1024 of the
// maximum reach 1.0.
func (r *SplitMix64) Uniform() float64 {
	return float64(r.Uint64()) / float64(uint64(math.MaxUint64))
}
