package tile

import (
	"errors"
	"testing"
)

func TestSolid(t *testing.T) {
	solid := []Tile{Hookable, Freeze, Platform}
	for _, tl := range solid {
		if !tl.Solid() {
			t.Errorf("%v should be solid", tl)
		}
	}
	nonSolid := []Tile{Empty, EmptyReserved, Spawn, Start, Finish}
	for _, tl := range nonSolid {
		if tl.Solid() {
			t.Errorf("%v should not be solid", tl)
		}
	}
}

func TestOverwriteAllows(t *testing.T) {
	cases := []struct {
		o        Overwrite
		existing Tile
		want     bool
	}{
		{Force, Hookable, true},
		{Force, Empty, true},
		{ReplaceEmptyOnly, Empty, true},
		{ReplaceEmptyOnly, EmptyReserved, true},
		{ReplaceEmptyOnly, Hookable, false},
		{ReplaceNonSolidForce, Empty, true},
		{ReplaceNonSolidForce, Hookable, false},
		{ReplaceSolidOnly, Hookable, true},
		{ReplaceSolidOnly, Empty, false},
	}
	for _, c := range cases {
		if got := c.o.Allows(c.existing); got != c.want {
			t.Errorf("%v.Allows(%v) = %v, want %v", c.o, c.existing, got, c.want)
		}
	}
}

func TestStringers(t *testing.T) {
	if Finish.String() != "Finish" {
		t.Errorf("Finish.String() = %q", Finish.String())
	}
	if Tile(200).String() == "" {
		t.Error("unknown tile should still stringify without panicking")
	}
	if Force.String() != "Force" {
		t.Errorf("Force.String() = %q", Force.String())
	}
}

func TestErrorIsMatchesKindNotMessage(t *testing.T) {
	err := NewError(OutOfBounds, "position (%d,%d) escapes a %dx%d grid", 9, 9, 5, 5)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatal("descriptive error should match its sentinel via errors.Is")
	}
	if errors.Is(err, ErrNoGoal) {
		t.Fatal("errors of different kinds should not match")
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	if got := ErrNoGoal.Error(); got != "NoGoal" {
		t.Fatalf("sentinel with empty Msg should print just its Kind, got %q", got)
	}
	err := NewError(RoomOutOfBounds, "room does not fit")
	if got := err.Error(); got != "RoomOutOfBounds: room does not fit" {
		t.Fatalf("got %q", got)
	}
}
