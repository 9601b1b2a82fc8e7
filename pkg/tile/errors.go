package tile

import (
	"errors"
	"fmt"
)

// Kind is one of the closed set of error tags the generator can return.
type Kind uint8

const (
	// WalkerFinished is returned when a step is attempted after the walker
	// has already visited its last waypoint.
	WalkerFinished Kind = iota
	// OutOfBounds is returned when an area op or a shift would escape the
	// grid.
	OutOfBounds
	// RoomOutOfBounds is returned when GenerateRoom cannot fit at the given
	// position.
	RoomOutOfBounds
	// NoGoal is returned when a step is attempted without an active
	// waypoint.
	NoGoal
	// EmptyDistribution is returned when a distribution config has no
	// values (or mismatched value and probability lengths) at normalization.
	EmptyDistribution
)

// String returns the tag's name.
func (k Kind) String() string {
	switch k {
	case WalkerFinished:
		return "WalkerFinished"
	case OutOfBounds:
		return "OutOfBounds"
	case RoomOutOfBounds:
		return "RoomOutOfBounds"
	case NoGoal:
		return "NoGoal"
	case EmptyDistribution:
		return "EmptyDistribution"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the error type returned by generator operations. It carries one
// of the closed Kind tags so callers can branch on errors.Is against the
// package-level sentinels below.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is the sentinel for e's Kind, so callers can
// write errors.Is(err, tile.ErrOutOfBounds).
func (e *Error) Is(target error) bool {
	var sentinel *Error
	if errors.As(target, &sentinel) {
		return sentinel.Kind == e.Kind
	}
	return false
}

// Sentinel errors for errors.Is comparisons. Their Msg is empty; use
// NewError to build a descriptive instance of the same Kind.
var (
	ErrWalkerFinished    = &Error{Kind: WalkerFinished}
	ErrOutOfBounds       = &Error{Kind: OutOfBounds}
	ErrRoomOutOfBounds   = &Error{Kind: RoomOutOfBounds}
	ErrNoGoal            = &Error{Kind: NoGoal}
	ErrEmptyDistribution = &Error{Kind: EmptyDistribution}
)

// NewError builds an *Error of the given kind with a descriptive message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
