// Package tile defines the closed tile taxonomy, overwrite policies, and
// error taxonomy shared by every mutating operation in the generator.
package tile
