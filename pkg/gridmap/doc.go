// Package gridmap implements the tile grid: area queries and mutations under
// an overwrite policy, kernel stamping, and a coarse chunk-dirty bitmap for
// renderers that want to skip homogeneous regions.
package gridmap
