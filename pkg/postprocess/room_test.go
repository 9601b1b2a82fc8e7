package postprocess

import (
	"errors"
	"testing"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/tile"
)

func TestGenerateRoom_OutOfBounds(t *testing.T) {
	m := gridmap.New(10, 10, 4, tile.Hookable)
	err := GenerateRoom(m, geom.Position{X: 0, Y: 0}, 3, 1, NoZone)
	if !errors.Is(err, tile.ErrRoomOutOfBounds) {
		t.Fatalf("expected ErrRoomOutOfBounds, got %v", err)
	}
}

func TestGenerateRoom_NoZoneCenterPlatform(t *testing.T) {
	m := gridmap.New(20, 20, 4, tile.Hookable)
	center := geom.Position{X: 10, Y: 10}
	if err := GenerateRoom(m, center, 5, 3, NoZone); err != nil {
		t.Fatal(err)
	}
	// y = pos.y + R - 3 = 10 + 5 - 3 = 12.
	if got := m.At(geom.Position{X: 10, Y: 12}); got != tile.Platform {
		t.Fatalf("expected center platform at y=pos.y+R-3, got %v", got)
	}
	if got := m.At(center); got != tile.EmptyReserved {
		t.Fatalf("expected EmptyReserved at center, got %v", got)
	}
}

func TestGenerateRoom_StartZone(t *testing.T) {
	m := gridmap.New(40, 40, 4, tile.Hookable)
	center := geom.Position{X: 20, Y: 20}
	// The zone border is written only over non-solid tiles, so carve the
	// room's footprint first, as the walker would have.
	if err := m.SetArea(geom.Position{X: 13, Y: 13}, geom.Position{X: 27, Y: 27}, tile.Empty, tile.Force); err != nil {
		t.Fatal(err)
	}
	if err := GenerateRoom(m, center, 6, 3, ZoneStart); err != nil {
		t.Fatal(err)
	}
	// Spawn row at y = pos.y + R - 1 = 25.
	spawnCount, err := m.CountOccurrenceInArea(geom.Position{X: 17, Y: 25}, geom.Position{X: 23, Y: 25}, tile.Spawn)
	if err != nil {
		t.Fatal(err)
	}
	if spawnCount == 0 {
		t.Fatal("expected spawn tiles on the spawn row")
	}
	// Zone border at pos+(R+1) should carry Start tiles.
	exists, err := m.CheckAreaExists(geom.Position{X: 13, Y: 13}, geom.Position{X: 27, Y: 27}, tile.Start)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected Start tiles on the zone border")
	}
}

func TestGenerateRoom_OverlappingRoomsDoNotPanic(t *testing.T) {
	m := gridmap.New(30, 30, 4, tile.Hookable)
	center := geom.Position{X: 15, Y: 15}
	if err := GenerateRoom(m, center, 6, 3, ZoneStart); err != nil {
		t.Fatalf("start room: %v", err)
	}
	// "Finish wins": generating the finish room at the same spot afterward
	// must not panic or error, and its border tile should be the final
	// state at the shared border cells.
	if err := GenerateRoom(m, center, 4, 3, ZoneFinish); err != nil {
		t.Fatalf("finish room: %v", err)
	}
}
