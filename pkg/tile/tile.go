package tile

import "fmt"

// Tile is the closed set of tile categories a Map cell can hold.
type Tile uint8

const (
	Empty Tile = iota
	EmptyReserved
	Hookable
	Freeze
	Spawn
	Start
	Finish
	Platform
)

// Solid reports whether a tile blocks movement. Hookable, Freeze, and
// Platform are solid; every other tile is traversable.
func (t Tile) Solid() bool {
	switch t {
	case Hookable, Freeze, Platform:
		return true
	default:
		return false
	}
}

// String returns the tile's name, for debug output and SVG labeling.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case EmptyReserved:
		return "EmptyReserved"
	case Hookable:
		return "Hookable"
	case Freeze:
		return "Freeze"
	case Spawn:
		return "Spawn"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	case Platform:
		return "Platform"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Overwrite controls which existing tiles a mutating area operation is
// permitted to replace.
type Overwrite uint8

const (
	// Force writes unconditionally.
	Force Overwrite = iota
	// ReplaceEmptyOnly writes only over Empty or EmptyReserved.
	ReplaceEmptyOnly
	// ReplaceNonSolidForce writes over any non-solid tile; solid tiles are
	// left untouched.
	ReplaceNonSolidForce
	// ReplaceSolidOnly writes only over solid tiles.
	ReplaceSolidOnly
)

// Allows reports whether writing over existing is permitted under this
// overwrite policy.
func (o Overwrite) Allows(existing Tile) bool {
	switch o {
	case Force:
		return true
	case ReplaceEmptyOnly:
		return existing == Empty || existing == EmptyReserved
	case ReplaceNonSolidForce:
		return !existing.Solid()
	case ReplaceSolidOnly:
		return existing.Solid()
	default:
		return false
	}
}

// String returns the overwrite policy's name.
func (o Overwrite) String() string {
	switch o {
	case Force:
		return "Force"
	case ReplaceEmptyOnly:
		return "ReplaceEmptyOnly"
	case ReplaceNonSolidForce:
		return "ReplaceNonSolidForce"
	case ReplaceSolidOnly:
		return "ReplaceSolidOnly"
	default:
		return fmt.Sprintf("Overwrite(%d)", uint8(o))
	}
}
