// Package kernel implements the boolean stamp shapes the walker carves with:
// a square that rounds toward a disk as circularity increases.
package kernel
