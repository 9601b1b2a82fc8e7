package rng

import (
	"math"

	"github.com/dshills/tunnelgen/pkg/tile"
)

// RandomDistConfig is a parallel (values, probabilities) pair. Probs need
// not already sum to 1: Normalize brings them into a valid distribution.
type RandomDistConfig[T any] struct {
	Values []T       `yaml:"values"`
	Probs  []float32 `yaml:"probs"`
}

// Normalize brings Probs into a valid probability distribution in place:
// if they already sum to 1 (within floating-point tolerance), it's a no-op;
// if they sum to 0, every entry is set to 1/n; otherwise every entry is
// divided by the sum. Returns tile.ErrEmptyDistribution if Values is empty
// or the two slices have different lengths.
func (c *RandomDistConfig[T]) Normalize() error {
	n := len(c.Values)
	if n == 0 || len(c.Probs) != n {
		return tile.NewError(tile.EmptyDistribution, "distribution has no values")
	}

	var sum float32
	for _, p := range c.Probs {
		sum += p
	}

	const epsilon = 1e-6
	switch {
	case sum > 1-epsilon && sum < 1+epsilon:
		return nil
	case sum == 0:
		uniform := float32(1) / float32(n)
		for i := range c.Probs {
			c.Probs[i] = uniform
		}
	default:
		for i := range c.Probs {
			c.Probs[i] /= sum
		}
	}
	return nil
}

// RandomDist wraps a normalized RandomDistConfig with a precomputed
// Vose alias table so Sample runs in O(1).
type RandomDist[T any] struct {
	values []T
	prob   []float32
	alias  []int
}

// NewRandomDist normalizes cfg and builds its alias table. The config is not
// mutated if normalization fails.
func NewRandomDist[T any](cfg RandomDistConfig[T]) (*RandomDist[T], error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	n := len(cfg.Values)
	prob := make([]float32, n)
	alias := make([]int, n)

	scaled := make([]float32, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range cfg.Probs {
		scaled[i] = p * float32(n)
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for _, l := range large {
		prob[l] = 1
	}
	for _, s := range small {
		prob[s] = 1
	}

	values := make([]T, n)
	copy(values, cfg.Values)

	return &RandomDist[T]{values: values, prob: prob, alias: alias}, nil
}

// Len returns the number of entries in the distribution.
func (d *RandomDist[T]) Len() int {
	return len(d.values)
}

// Value returns the value at index i.
func (d *RandomDist[T]) Value(i int) T {
	return d.values[i]
}

// SampleIndex draws an index from the distribution in O(1), consuming
// exactly two words from r: one to pick a bucket, one to decide between the
// bucket's primary value and its alias. This fixed two-word cost is part of
// the generator's PRNG cadence contract (see the walker's MutateKernel).
func (d *RandomDist[T]) SampleIndex(r *RNG) int {
	n := len(d.values)
	i := int(r.GenRange(0, uint64(n)))
	u := float32(float64(r.NextU64()) / float64(math.MaxUint64))
	if u < d.prob[i] {
		return i
	}
	return d.alias[i]
}

// Sample draws a value from the distribution.
func (d *RandomDist[T]) Sample(r *RNG) T {
	return d.values[d.SampleIndex(r)]
}
