// Package mutation implements the optional, pluggable stepwise
// transformation engine: a Mutator runs once per walker step and reports
// whether it is still Processing or has Finished, and can be composed with
// others into bounded or endless loops. pkg/mapgen.Generator invokes a
// configured Loop's Bounded method ahead of every walker step, feeding its
// resulting direction/goal overrides into walker.Walker.ApplyOverrides; a
// Config with no Mutators leaves the walker unmutated.
package mutation
