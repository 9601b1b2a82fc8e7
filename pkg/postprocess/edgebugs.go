package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// FixEdgeBugs promotes any Empty tile 4-connected-adjacent to a Hookable
// tile into Freeze, so that after it runs no Empty-Hookable edge remains.
// Connectivity is 4-connected, not 8-connected: a diagonal Empty/Hookable
// pair shares no edge on the tile grid, so it is not a "bug" under this
// policy (the spec leaves the choice open; this is the one committed to).
func FixEdgeBugs(m *gridmap.Map) error {
	w, h := m.Width, m.Height
	toPromote := make([]geom.Position, 0)

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			p := geom.Position{X: x, Y: y}
			if m.At(p) != tile.Empty {
				continue
			}
			for _, n := range geom.Neighbors4(p, w, h) {
				if m.At(n) == tile.Hookable {
					toPromote = append(toPromote, p)
					break
				}
			}
		}
	}

	for _, p := range toPromote {
		if err := m.SetTile(p, tile.Freeze, tile.Force); err != nil {
			return err
		}
	}
	return nil
}
