// Package debugsvg renders a gridmap.Map as an SVG snapshot for visual
// debugging: one rectangle per tile, colored by its category. It is a presentation
// aid only; the generator core never imports it.
package debugsvg
