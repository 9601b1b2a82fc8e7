// Package mapgen is the generation façade: it binds a YAML-loadable Config
// to a gridmap.Map and a walker.Walker, drives the walker to completion,
// and runs the fixed post-processing pipeline over the result.
package mapgen
