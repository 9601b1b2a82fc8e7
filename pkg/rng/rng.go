package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
)

// RNG is the single-owner deterministic source the walker and mutation
// engine draw from.
type RNG struct {
	seed   uint64
	source *rand.Rand
}

// NewFromSeed builds an RNG directly from a 64-bit seed.
func NewFromSeed(seed uint64) *RNG {
	return &RNG{seed: seed, source: rand.New(rand.NewSource(int64(seed)))}
}

// NewFromString derives a 64-bit seed from an arbitrary string by hashing it
// with SHA-256 and taking the first 8 bytes, big-endian.
func NewFromString(s string) *RNG {
	h := sha256.Sum256([]byte(s))
	return NewFromSeed(binary.BigEndian.Uint64(h[:8]))
}

// Seed returns the RNG's originating seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// NextU64 returns the next pseudo-random 64-bit word in the stream.
func (r *RNG) NextU64() uint64 {
	return r.source.Uint64()
}

// Skip discards one word from the stream without returning it.
func (r *RNG) Skip() {
	r.source.Uint64()
}

// SkipN discards n words from the stream.
func (r *RNG) SkipN(n int) {
	for i := 0; i < n; i++ {
		r.source.Uint64()
	}
}

// GenBool draws a boolean that is true with probability p. p is clamped to
// [0,1]. The p==0 and p==1 short circuits still consume one word via Skip,
// so GenBool always costs exactly one word regardless of p.
func (r *RNG) GenBool(p float32) bool {
	if p <= 0 {
		r.Skip()
		return false
	}
	if p >= 1 {
		r.Skip()
		return true
	}
	return float64(r.NextU64()) < float64(p)*float64(math.MaxUint64)
}

// GenRange returns a pseudo-random value in [lo, hi). Returns lo if
// hi <= lo.
func (r *RNG) GenRange(lo, hi uint64) uint64 {
	if hi <= lo {
		r.Skip()
		return lo
	}
	span := hi - lo
	return lo + r.NextU64()%span
}

// Pick returns a uniformly random element of s. Panics if s is empty; s is
// expected to be a small fixed-size slice the caller controls (e.g. the four
// directions), never user input.
func (r *RNG) Pick(s []int) int {
	return s[r.GenRange(0, uint64(len(s)))]
}
