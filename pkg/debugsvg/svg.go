package debugsvg

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Options configures the SVG snapshot.
type Options struct {
	CellSize   int  // Pixel size of one tile cell (default: 4)
	ShowGrid   bool // Draw a faint grid line between cells
	Background string
}

// DefaultOptions returns sensible default export options.
func DefaultOptions() Options {
	return Options{
		CellSize:   4,
		ShowGrid:   false,
		Background: "#1a1a2e",
	}
}

// Export renders m as an SVG document: one rect per tile, colored by
// category.
func Export(m *gridmap.Map, opts Options) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("debugsvg: map cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 4
	}

	width := int(m.Width) * opts.CellSize
	height := int(m.Height) * opts.CellSize

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", opts.Background))

	style := ""
	if opts.ShowGrid {
		style = "stroke:#00000022;stroke-width:1"
	}

	for y := uint(0); y < m.Height; y++ {
		for x := uint(0); x < m.Width; x++ {
			t := m.At(geom.Position{X: x, Y: y})
			color := tileColor(t)
			rectStyle := fmt.Sprintf("fill:%s", color)
			if style != "" {
				rectStyle += ";" + style
			}
			canvas.Rect(int(x)*opts.CellSize, int(y)*opts.CellSize, opts.CellSize, opts.CellSize, rectStyle)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders m and writes it to filepath with 0644 permissions.
func SaveToFile(m *gridmap.Map, filepath string, opts Options) error {
	data, err := Export(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// tileColor maps a tile category to a fixed swatch.
func tileColor(t tile.Tile) string {
	switch t {
	case tile.Empty:
		return "#1a1a2e"
	case tile.EmptyReserved:
		return "#16213e"
	case tile.Hookable:
		return "#4a5568"
	case tile.Freeze:
		return "#2b6cb0"
	case tile.Spawn:
		return "#48bb78"
	case tile.Start:
		return "#48bb78"
	case tile.Finish:
		return "#f56565"
	case tile.Platform:
		return "#ed8936"
	default:
		return "#718096"
	}
}
