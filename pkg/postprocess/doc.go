// Package postprocess implements the fixed-order passes that run once the
// walker finishes: edge-bug fixing, room stamping (start, finish, and
// forced platform rooms), freeze-blob removal, open-area filling, and skip
// insertion. Passes are all-or-nothing: the first error aborts the rest,
// leaving the map in its partially-mutated state.
package postprocess
