package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// GenerateAllSkips scans for short horizontal and vertical Hookable runs
// whose both ends touch Empty, within [minLen, maxLen] cells, and greedily
// accepts them in scan order (rows first, then columns): a candidate is
// rejected if its midpoint lies within minSpacingSqr (squared distance) of
// an already-accepted skip. Every accepted skip is carved to Empty along
// its segment and framed with Freeze on both flanks. It returns the number
// of skips accepted.
func GenerateAllSkips(m *gridmap.Map, minLen, maxLen uint, minSpacingSqr uint64) (int, error) {
	var accepted []geom.Position

	tryAccept := func(mid geom.Position) bool {
		for _, a := range accepted {
			if geom.SqDist(mid, a) <= minSpacingSqr {
				return false
			}
		}
		accepted = append(accepted, mid)
		return true
	}

	w, h := m.Width, m.Height

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; {
			if m.At(geom.Position{X: x, Y: y}) != tile.Hookable {
				x++
				continue
			}
			start := x
			for x < w && m.At(geom.Position{X: x, Y: y}) == tile.Hookable {
				x++
			}
			length := x - start
			if length < minLen || length > maxLen || start == 0 || x >= w {
				continue
			}
			if m.At(geom.Position{X: start - 1, Y: y}) != tile.Empty || m.At(geom.Position{X: x, Y: y}) != tile.Empty {
				continue
			}
			mid := geom.Position{X: start + length/2, Y: y}
			if !tryAccept(mid) {
				continue
			}
			if err := carveHorizontalSkip(m, start, x, y); err != nil {
				return 0, err
			}
		}
	}

	for x := uint(0); x < w; x++ {
		for y := uint(0); y < h; {
			if m.At(geom.Position{X: x, Y: y}) != tile.Hookable {
				y++
				continue
			}
			start := y
			for y < h && m.At(geom.Position{X: x, Y: y}) == tile.Hookable {
				y++
			}
			length := y - start
			if length < minLen || length > maxLen || start == 0 || y >= h {
				continue
			}
			if m.At(geom.Position{X: x, Y: start - 1}) != tile.Empty || m.At(geom.Position{X: x, Y: y}) != tile.Empty {
				continue
			}
			mid := geom.Position{X: x, Y: start + length/2}
			if !tryAccept(mid) {
				continue
			}
			if err := carveVerticalSkip(m, x, start, y); err != nil {
				return 0, err
			}
		}
	}
	return len(accepted), nil
}

func carveHorizontalSkip(m *gridmap.Map, startX, endX, y uint) error {
	for cx := startX; cx < endX; cx++ {
		p := geom.Position{X: cx, Y: y}
		if err := m.SetTile(p, tile.Empty, tile.Force); err != nil {
			return err
		}
		if above, ok := p.ShiftBy(0, -1); ok && m.PosInBounds(above) {
			if err := m.SetTile(above, tile.Freeze, tile.Force); err != nil {
				return err
			}
		}
		if below, ok := p.ShiftBy(0, 1); ok && m.PosInBounds(below) {
			if err := m.SetTile(below, tile.Freeze, tile.Force); err != nil {
				return err
			}
		}
	}
	return nil
}

func carveVerticalSkip(m *gridmap.Map, x, startY, endY uint) error {
	for cy := startY; cy < endY; cy++ {
		p := geom.Position{X: x, Y: cy}
		if err := m.SetTile(p, tile.Empty, tile.Force); err != nil {
			return err
		}
		if left, ok := p.ShiftBy(-1, 0); ok && m.PosInBounds(left) {
			if err := m.SetTile(left, tile.Freeze, tile.Force); err != nil {
				return err
			}
		}
		if right, ok := p.ShiftBy(1, 0); ok && m.PosInBounds(right) {
			if err := m.SetTile(right, tile.Freeze, tile.Force); err != nil {
				return err
			}
		}
	}
	return nil
}
