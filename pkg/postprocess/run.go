package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
)

// Config bundles the post-processing tunables that don't belong to a
// single pass: freeze-blob removal's size cutoff, open-area fill's
// distance ceiling, and skip detection's length/spacing bounds.
type Config struct {
	MinFreezeSize uint

	MaxDistance float64

	SkipMinLen        uint
	SkipMaxLen        uint
	SkipMinSpacingSqr uint64
}

// Result reports the per-pass counts a caller may want to surface as
// metrics: how many undersized freeze blobs were rewritten to empty, and
// how many skip corridors were carved.
type Result struct {
	FreezeBlobsRemoved int
	SkipsPlaced        int
}

// Run executes every pass in the fixed order: fix_edge_bugs, start room,
// finish room, remove_freeze_blobs, fill_open_areas, generate_all_skips.
// startPos and finishPos generate overlapping rooms without error when
// they coincide (the single-waypoint edge case) -- the finish room is
// stamped second, so it wins any contested tile.
func Run(m *gridmap.Map, startPos, finishPos geom.Position, cfg Config) (Result, error) {
	var result Result

	if err := FixEdgeBugs(m); err != nil {
		return result, err
	}

	const startRoomSize, startMargin = 6, 3
	const finishRoomSize, finishMargin = 4, 3

	if err := GenerateRoom(m, startPos, startRoomSize, startMargin, ZoneStart); err != nil {
		return result, err
	}
	if err := GenerateRoom(m, finishPos, finishRoomSize, finishMargin, ZoneFinish); err != nil {
		return result, err
	}

	removed, err := RemoveFreezeBlobs(m, cfg.MinFreezeSize)
	if err != nil {
		return result, err
	}
	result.FreezeBlobsRemoved = removed

	protected := []Rect{
		roomInteriorRect(startPos, startRoomSize),
		roomInteriorRect(finishPos, finishRoomSize),
	}
	if err := FillOpenAreas(m, cfg.MaxDistance, protected); err != nil {
		return result, err
	}

	placed, err := GenerateAllSkips(m, cfg.SkipMinLen, cfg.SkipMaxLen, cfg.SkipMinSpacingSqr)
	if err != nil {
		return result, err
	}
	result.SkipsPlaced = placed

	return result, nil
}

// roomInteriorRect returns the inclusive interior rectangle GenerateRoom
// reserves at pos±(r-1), the region FillOpenAreas must leave untouched.
func roomInteriorRect(pos geom.Position, r uint) Rect {
	if r == 0 {
		return Rect{TL: pos, BR: pos}
	}
	tl, okTL := pos.ShiftBy(-int(r-1), -int(r-1))
	br, okBR := pos.ShiftBy(int(r-1), int(r-1))
	if !okTL {
		tl = geom.Position{}
	}
	if !okBR {
		br = pos
	}
	return Rect{TL: tl, BR: br}
}
