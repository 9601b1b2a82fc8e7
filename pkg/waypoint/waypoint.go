package waypoint

import (
	"math"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Normalized is a resolution-independent waypoint: both fields lie in
// [0,1], proportional to map width/height.
type Normalized struct {
	FX, FY float64
}

// Bind rounds each normalized waypoint to the nearest grid cell under a
// w x h map, clamping into bounds. It errors if the list is empty.
func Bind(waypoints []Normalized, w, h uint) ([]geom.Position, error) {
	if len(waypoints) == 0 {
		return nil, tile.NewError(tile.NoGoal, "waypoint list is empty")
	}
	out := make([]geom.Position, len(waypoints))
	for i, n := range waypoints {
		out[i] = geom.Position{
			X: clampRound(n.FX, w),
			Y: clampRound(n.FY, h),
		}
	}
	return out, nil
}

// clampRound maps a normalized coordinate in [0,1] to the nearest integer
// cell index in [0, size-1].
func clampRound(f float64, size uint) uint {
	if size == 0 {
		return 0
	}
	scaled := f * float64(size-1)
	rounded := math.Round(scaled)
	if rounded < 0 {
		return 0
	}
	if rounded > float64(size-1) {
		return size - 1
	}
	return uint(rounded)
}
