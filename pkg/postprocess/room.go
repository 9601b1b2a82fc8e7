package postprocess

import (
	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Zone labels the optional purpose a generated room serves. The zero value,
// NoZone, generates a bare room with a single center platform and no
// border tile or spawn strip.
type Zone int

const (
	NoZone Zone = iota
	ZoneStart
	ZoneFinish
)

// Tile returns the border tile this zone stamps, used by GenerateRoom.
func (z Zone) Tile() tile.Tile {
	switch z {
	case ZoneStart:
		return tile.Start
	case ZoneFinish:
		return tile.Finish
	default:
		return tile.Hookable
	}
}

// GenerateRoom carves a square room of half-extent R centered at pos: an
// Empty border, an EmptyReserved interior, and -- if zone is not NoZone --
// a zone-tagged outline one tile further out, written only over non-solid
// tiles (solid tiles on that ring are left as they are). A Start zone additionally
// gets a spawn strip and a platform row; a NoZone room gets a single
// center platform instead.
//
// GenerateRoom fails with tile.RoomOutOfBounds if any corner of the
// room's extent (including the zone border, when present) falls outside m.
func GenerateRoom(m *gridmap.Map, pos geom.Position, r, margin uint, zone Zone) error {
	outerExtent := r
	if zone != NoZone {
		outerExtent = r + 1
	}
	tl, ok1 := pos.ShiftBy(-int(outerExtent), -int(outerExtent))
	br, ok2 := pos.ShiftBy(int(outerExtent), int(outerExtent))
	if !ok1 || !ok2 || !m.PosInBounds(tl) || !m.PosInBounds(br) {
		return tile.NewError(tile.RoomOutOfBounds, "generate room out of bounds at %v (r=%d)", pos, r)
	}

	borderTL, _ := pos.ShiftBy(-int(r), -int(r))
	borderBR, _ := pos.ShiftBy(int(r), int(r))
	if err := m.SetAreaBorder(borderTL, borderBR, tile.Empty, tile.Force); err != nil {
		return err
	}

	if r >= 1 {
		interiorTL, ok := pos.ShiftBy(-int(r-1), -int(r-1))
		interiorBR, ok2 := pos.ShiftBy(int(r-1), int(r-1))
		if ok && ok2 {
			if err := m.SetArea(interiorTL, interiorBR, tile.EmptyReserved, tile.Force); err != nil {
				return err
			}
		}
	}

	if zone == NoZone {
		center, ok := pos.ShiftBy(0, int(r)-3)
		if ok && m.PosInBounds(center) {
			if err := m.SetTile(center, tile.Platform, tile.ReplaceEmptyOnly); err != nil {
				return err
			}
		}
		return nil
	}

	zoneTL, _ := pos.ShiftBy(-int(r+1), -int(r+1))
	zoneBR, _ := pos.ShiftBy(int(r+1), int(r+1))
	if err := m.SetAreaBorder(zoneTL, zoneBR, zone.Tile(), tile.ReplaceNonSolidForce); err != nil {
		return err
	}

	if zone == ZoneStart {
		inset := int(r) - int(margin)

		xlo, ok1 := pos.ShiftBy(-inset, int(r)-1)
		xhi, ok2 := pos.ShiftBy(inset, int(r)-1)
		if ok1 && ok2 && m.PosInBounds(xlo) && m.PosInBounds(xhi) {
			if err := m.SetArea(xlo, xhi, tile.Spawn, tile.Force); err != nil {
				return err
			}
		}

		platTL, ok1 := pos.ShiftBy(-inset, int(r)+1)
		platBR, ok2 := pos.ShiftBy(inset, int(r)+1)
		if ok1 && ok2 && m.PosInBounds(platTL) && m.PosInBounds(platBR) {
			if err := m.SetArea(platTL, platBR, tile.Platform, tile.Force); err != nil {
				return err
			}
		}
	}

	return nil
}
