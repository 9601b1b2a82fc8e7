package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/distance"
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Rect is an inclusive rectangle, used to mark room interiors FillOpenAreas
// must not touch when it demotes stray EmptyReserved tiles.
type Rect struct {
	TL, BR geom.Position
}

func (r Rect) contains(p geom.Position) bool {
	return p.X >= r.TL.X && p.X <= r.BR.X && p.Y >= r.TL.Y && p.Y <= r.BR.Y
}

// FillOpenAreas first demotes every EmptyReserved tile outside protected
// (start/finish room interior) rectangles back to Empty, then computes a
// distance transform over the solid mask and promotes any Empty cell whose
// distance to the nearest solid tile exceeds maxDistance to Hookable.
func FillOpenAreas(m *gridmap.Map, maxDistance float64, protected []Rect) error {
	w, h := m.Width, m.Height

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			p := geom.Position{X: x, Y: y}
			if m.At(p) != tile.EmptyReserved {
				continue
			}
			if insideAny(p, protected) {
				continue
			}
			if err := m.SetTile(p, tile.Empty, tile.Force); err != nil {
				return err
			}
		}
	}

	mask := make([][]bool, h)
	for y := uint(0); y < h; y++ {
		mask[y] = make([]bool, w)
		for x := uint(0); x < w; x++ {
			mask[y][x] = m.At(geom.Position{X: x, Y: y}).Solid()
		}
	}
	dt := distance.Transform(mask)

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			p := geom.Position{X: x, Y: y}
			if m.At(p) != tile.Empty {
				continue
			}
			if dt[y][x] > maxDistance {
				if err := m.SetTile(p, tile.Hookable, tile.Force); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func insideAny(p geom.Position, rects []Rect) bool {
	for _, r := range rects {
		if r.contains(p) {
			return true
		}
	}
	return false
}
