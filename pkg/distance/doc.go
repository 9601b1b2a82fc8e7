// Package distance implements a separable squared-Euclidean distance
// transform over a boolean mask, used by post-processing's open-area fill
// and skip detection to measure a cell's distance to the nearest solid tile.
package distance
