// Package geom provides the integer coordinate and direction primitives
// shared by the grid, kernel, and walker packages.
package geom
