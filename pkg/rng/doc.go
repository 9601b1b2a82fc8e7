// Package rng provides the deterministic pseudo-random stream shared by the
// walker and the mutation engine, plus weighted-alias categorical sampling
// over fixed value tables.
//
// # Determinism contract
//
// For a fixed seed, RNG emits the same sequence of 64-bit words regardless
// of platform. Every helper method (GenBool, GenRange, Pick, Sample) is
// defined purely in terms of NextU64, so the sequence of *decisions* is
// reproducible as long as callers invoke the same methods in the same order.
//
// Skip and SkipN exist so that callers whose branching depends on runtime
// configuration (see the walker's MutateKernel) can keep that cadence
// stable: a branch that isn't taken still consumes the same number of words
// a taken branch would have, via Skip()/SkipN(n).
//
// # Seeding
//
// NewFromSeed takes a raw uint64. NewFromString hashes an arbitrary string
// with SHA-256 and takes the first 8 bytes, big-endian, as the seed -- the
// same derivation the dungeon-generator teacher uses to turn a stage name
// into a sub-seed, here used to let callers seed from any string.
//
// # Thread safety
//
// An RNG is single-owner: the walker or mutator that holds it must not be
// shared across goroutines. Independent generators each own their own RNG.
package rng
