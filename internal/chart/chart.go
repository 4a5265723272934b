// Package chart holds the bar chart demo's data.
package chart

import "math/rand/v2"

// Bars is the number of bars the chart shows.
const Bars = 5

// Max is the exclusive upper bound of a bar value (a percentage).
const Max = 100

// Default is the chart's first dataset.
func Default() []int { return []int{30, 50, 80, 40, 70} }

// Regenerate draws a fresh dataset from r. Values are in [0, Max).
func Regenerate(r *rand.Rand) []int {
	out := make([]int, Bars)
	for i := range out {
		out[i] = r.IntN(Max)
	}
	return out
}

// NewRand returns a generator for Regenerate. A zero seed picks a random
// one; any other seed yields a repeatable sequence.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
