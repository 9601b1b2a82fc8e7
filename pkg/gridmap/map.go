package gridmap

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/kernel"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Map is the W x H tile grid with a parallel, coarser chunk-dirty bitmap.
type Map struct {
	Width, Height uint
	ChunkSize     uint
	InitialFill   tile.Tile

	cells []tile.Tile

	chunksX, chunksY uint
	dirty            []bool
}

// New builds a Map filled entirely with fill. chunkSize must be >= 1; a
// value of 0 is treated as 1 (every tile its own chunk).
func New(width, height, chunkSize uint, fill tile.Tile) *Map {
	if chunkSize == 0 {
		chunkSize = 1
	}
	m := &Map{
		Width:       width,
		Height:      height,
		ChunkSize:   chunkSize,
		InitialFill: fill,
		chunksX:     ceilDiv(width, chunkSize),
		chunksY:     ceilDiv(height, chunkSize),
	}
	m.cells = make([]tile.Tile, width*height)
	m.dirty = make([]bool, m.chunksX*m.chunksY)
	for i := range m.cells {
		m.cells[i] = fill
	}
	return m
}

func ceilDiv(a, b uint) uint {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (m *Map) index(p geom.Position) int {
	return int(p.Y*m.Width + p.X)
}

// PosInBounds reports whether p lies inside the grid.
func (m *Map) PosInBounds(p geom.Position) bool {
	return p.InBounds(m.Width, m.Height)
}

// At returns the tile at p. Callers must check PosInBounds first; At panics
// on an out-of-bounds position like any other slice index operation.
func (m *Map) At(p geom.Position) tile.Tile {
	return m.cells[m.index(p)]
}

func (m *Map) markDirty(p geom.Position) {
	cx := p.X / m.ChunkSize
	cy := p.Y / m.ChunkSize
	m.dirty[cy*m.chunksX+cx] = true
}

// ChunkDirty reports whether the chunk containing (cx, cy) in chunk-space
// has been mutated since the map was created or last cleared.
func (m *Map) ChunkDirty(cx, cy uint) bool {
	if cx >= m.chunksX || cy >= m.chunksY {
		return false
	}
	return m.dirty[cy*m.chunksX+cx]
}

// ChunkDims returns the chunk grid's width and height, in chunks.
func (m *Map) ChunkDims() (uint, uint) {
	return m.chunksX, m.chunksY
}

// SetTile writes tile t at p if overwrite permits it given the existing
// tile. Returns tile.ErrOutOfBounds if p is outside the grid.
func (m *Map) SetTile(p geom.Position, t tile.Tile, ow tile.Overwrite) error {
	if !m.PosInBounds(p) {
		return tile.NewError(tile.OutOfBounds, "position %v out of bounds %dx%d", p, m.Width, m.Height)
	}
	idx := m.index(p)
	if !ow.Allows(m.cells[idx]) {
		return nil
	}
	m.cells[idx] = t
	m.markDirty(p)
	return nil
}

// rectBounds validates an inclusive rectangle given by its top-left and
// bottom-right corners; inverted corners are rejected, not swapped.
func (m *Map) rectBounds(tl, br geom.Position) error {
	if !m.PosInBounds(tl) || !m.PosInBounds(br) {
		return tile.NewError(tile.OutOfBounds, "rect %v-%v out of bounds %dx%d", tl, br, m.Width, m.Height)
	}
	if tl.X > br.X || tl.Y > br.Y {
		return tile.NewError(tile.OutOfBounds, "rect %v-%v has inverted corners", tl, br)
	}
	return nil
}

// SetArea fills the inclusive rectangle [tl, br] with t, honoring ow.
func (m *Map) SetArea(tl, br geom.Position, t tile.Tile, ow tile.Overwrite) error {
	if err := m.rectBounds(tl, br); err != nil {
		return err
	}
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			p := geom.Position{X: x, Y: y}
			idx := m.index(p)
			if ow.Allows(m.cells[idx]) {
				m.cells[idx] = t
				m.markDirty(p)
			}
		}
	}
	return nil
}

// SetAreaBorder draws a 1-thick outline of the inclusive rectangle [tl, br].
func (m *Map) SetAreaBorder(tl, br geom.Position, t tile.Tile, ow tile.Overwrite) error {
	if err := m.rectBounds(tl, br); err != nil {
		return err
	}
	write := func(p geom.Position) {
		idx := m.index(p)
		if ow.Allows(m.cells[idx]) {
			m.cells[idx] = t
			m.markDirty(p)
		}
	}
	for x := tl.X; x <= br.X; x++ {
		write(geom.Position{X: x, Y: tl.Y})
		write(geom.Position{X: x, Y: br.Y})
	}
	for y := tl.Y; y <= br.Y; y++ {
		write(geom.Position{X: tl.X, Y: y})
		write(geom.Position{X: br.X, Y: y})
	}
	return nil
}

// CheckAreaExists reports whether any tile in the inclusive rectangle
// [tl, br] equals t.
func (m *Map) CheckAreaExists(tl, br geom.Position, t tile.Tile) (bool, error) {
	if err := m.rectBounds(tl, br); err != nil {
		return false, err
	}
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			if m.cells[m.index(geom.Position{X: x, Y: y})] == t {
				return true, nil
			}
		}
	}
	return false, nil
}

// CheckAreaAll reports whether every tile in the inclusive rectangle
// [tl, br] equals t.
func (m *Map) CheckAreaAll(tl, br geom.Position, t tile.Tile) (bool, error) {
	if err := m.rectBounds(tl, br); err != nil {
		return false, err
	}
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			if m.cells[m.index(geom.Position{X: x, Y: y})] != t {
				return false, nil
			}
		}
	}
	return true, nil
}

// CountOccurrenceInArea counts how many tiles in the inclusive rectangle
// [tl, br] equal t.
func (m *Map) CountOccurrenceInArea(tl, br geom.Position, t tile.Tile) (int, error) {
	if err := m.rectBounds(tl, br); err != nil {
		return 0, err
	}
	count := 0
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			if m.cells[m.index(geom.Position{X: x, Y: y})] == t {
				count++
			}
		}
	}
	return count, nil
}

// ApplyKernel stamps every true cell of k's texture, centered at center,
// into the grid as t. If any stamped cell would fall outside the map the
// whole stamp is rejected: ok is false and the map is left untouched (this
// is not an error condition, per spec). Otherwise every true cell is
// written, but -- regardless of ow -- only over Hookable or Freeze tiles;
// this carving invariant is hard-coded and not configurable per call.
func (m *Map) ApplyKernel(center geom.Position, k kernel.Kernel, t tile.Tile, ow tile.Overwrite) (ok bool, err error) {
	r := int(k.Radius())
	n := int(k.Size)

	// First pass: verify every true cell lands in bounds.
	for kx := 0; kx < n; kx++ {
		for ky := 0; ky < n; ky++ {
			if !k.At(kx, ky) {
				continue
			}
			p, shiftOK := center.ShiftBy(kx-r, ky-r)
			if !shiftOK || !m.PosInBounds(p) {
				return false, nil
			}
		}
	}

	// Second pass: write.
	for kx := 0; kx < n; kx++ {
		for ky := 0; ky < n; ky++ {
			if !k.At(kx, ky) {
				continue
			}
			p, _ := center.ShiftBy(kx-r, ky-r)
			idx := m.index(p)
			existing := m.cells[idx]
			if existing != tile.Hookable && existing != tile.Freeze {
				continue
			}
			if !ow.Allows(existing) {
				continue
			}
			m.cells[idx] = t
			m.markDirty(p)
		}
	}
	return true, nil
}

// Clear resets every tile to InitialFill and clears the dirty bitmap.
func (m *Map) Clear() {
	for i := range m.cells {
		m.cells[i] = m.InitialFill
	}
	for i := range m.dirty {
		m.dirty[i] = false
	}
}
