package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// RemoveFreezeBlobs flood-fills the 4-connected components of Freeze tiles.
// Any component with fewer than minSize cells, and that does not touch any
// Hookable tile, is rewritten to Empty. minSize == 0 disables the pass
// entirely: no component can have fewer than zero cells, so nothing is ever
// removed. It returns the number of components removed.
func RemoveFreezeBlobs(m *gridmap.Map, minSize uint) (int, error) {
	if minSize == 0 {
		return 0, nil
	}

	removed := 0
	w, h := m.Width, m.Height
	visited := make([]bool, w*h)
	idx := func(p geom.Position) uint { return p.Y*w + p.X }

	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			start := geom.Position{X: x, Y: y}
			if m.At(start) != tile.Freeze || visited[idx(start)] {
				continue
			}

			component := []geom.Position{start}
			visited[idx(start)] = true
			touchesHookable := false

			queue := []geom.Position{start}
			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]

				for _, n := range geom.Neighbors4(p, w, h) {
					t := m.At(n)
					if t == tile.Hookable {
						touchesHookable = true
						continue
					}
					if t != tile.Freeze || visited[idx(n)] {
						continue
					}
					visited[idx(n)] = true
					component = append(component, n)
					queue = append(queue, n)
				}
			}

			if uint(len(component)) < minSize && !touchesHookable {
				for _, p := range component {
					if err := m.SetTile(p, tile.Empty, tile.Force); err != nil {
						return 0, err
					}
				}
				removed++
			}
		}
	}
	return removed, nil
}
