package walker

import (
	"errors"
	"testing"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/rng"
	"github.com/dshills/tunnelgen/pkg/tile"
	"pgregory.net/rapid"
)

func testParams() Params {
	return Params{
		InnerSizeMutProb: 0.3,
		OuterSizeMutProb: 0.3,
		InnerRadMutProb:  0.3,
		OuterRadMutProb:  0.3,
		MomentumProb:     0.2,
		ShiftWeights: rng.RandomDistConfig[int]{
			Values: []int{0, 1, 2, 3},
			Probs:  []float32{0.7, 0.2, 0.08, 0.02},
		},
		InnerSizeProbs: rng.RandomDistConfig[uint]{
			Values: []uint{3, 4, 5},
			Probs:  []float32{0.3, 0.4, 0.3},
		},
		OuterMarginProbs: rng.RandomDistConfig[uint]{
			Values: []uint{2, 3},
			Probs:  []float32{0.5, 0.5},
		},
		CircProbs: rng.RandomDistConfig[float32]{
			Values: []float32{0, 0.5, 1},
			Probs:  []float32{0.3, 0.4, 0.3},
		},
		FadeSteps:           5,
		FadeMaxSize:         9,
		FadeMinSize:         5,
		PlatformDistanceMin: 3,
		PlatformDistanceMax: 30,
		WaypointReachedDist: 2,
	}
}

func TestNew_SingleWaypointAlreadyFinished(t *testing.T) {
	w, err := New([]geom.Position{{X: 10, Y: 10}}, testParams(), rng.NewFromSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	if !w.Finished() {
		t.Fatal("single-waypoint walker should start already finished")
	}
	if w.Steps() != 0 {
		t.Fatalf("expected zero steps, got %d", w.Steps())
	}
	if w.Pos() != w.StartPos() {
		t.Fatal("single-waypoint walker's position should equal its start position")
	}
}

func TestNew_RejectsEmptyWaypoints(t *testing.T) {
	_, err := New(nil, testParams(), rng.NewFromSeed(1))
	if !errors.Is(err, tile.ErrNoGoal) {
		t.Fatalf("expected ErrNoGoal, got %v", err)
	}
}

func TestStep_AfterFinishedErrors(t *testing.T) {
	w, err := New([]geom.Position{{X: 5, Y: 5}}, testParams(), rng.NewFromSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	m := gridmap.New(20, 20, 4, tile.Hookable)
	if err := w.Step(m); !errors.Is(err, tile.ErrWalkerFinished) {
		t.Fatalf("expected ErrWalkerFinished, got %v", err)
	}
}

// TestWalker_ReachesFinishWithinBounds drives a walker across a two-waypoint
// span and checks it finishes, in bounds, within a generous step budget.
func TestWalker_ReachesFinishWithinBounds(t *testing.T) {
	waypoints := []geom.Position{{X: 10, Y: 20}, {X: 90, Y: 20}}
	w, err := New(waypoints, testParams(), rng.NewFromSeed(0xDEADBEEF))
	if err != nil {
		t.Fatal(err)
	}
	m := gridmap.New(100, 40, 16, tile.Hookable)

	const maxSteps = 200000
	for i := 0; i < maxSteps && !w.Finished(); i++ {
		if err := w.Step(m); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !m.PosInBounds(w.Pos()) {
			t.Fatalf("walker left the grid at %v", w.Pos())
		}
	}
	if !w.Finished() {
		t.Fatalf("walker did not finish within %d steps", maxSteps)
	}
}

// TestWalker_DeterministicForFixedSeed verifies that two independent walkers
// given the same seed and parameters trace an identical path.
func TestWalker_DeterministicForFixedSeed(t *testing.T) {
	waypoints := []geom.Position{{X: 5, Y: 15}, {X: 80, Y: 15}}
	params := testParams()

	run := func() []geom.Position {
		w, err := New(waypoints, params, rng.NewFromSeed(777))
		if err != nil {
			t.Fatal(err)
		}
		m := gridmap.New(100, 30, 16, tile.Hookable)
		var path []geom.Position
		for i := 0; i < 50000 && !w.Finished(); i++ {
			if err := w.Step(m); err != nil {
				t.Fatalf("step: %v", err)
			}
			path = append(path, w.Pos())
		}
		return path
	}

	p1 := run()
	p2 := run()
	if len(p1) != len(p2) {
		t.Fatalf("path lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("paths diverge at step %d: %v vs %v", i, p1[i], p2[i])
		}
	}
}

// TestWalker_NeverLeavesBounds is the property-based form of the bounds
// invariant, across randomized small maps and waypoint pairs.
func TestWalker_NeverLeavesBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := uint(rapid.IntRange(20, 60).Draw(rt, "w"))
		h := uint(rapid.IntRange(20, 60).Draw(rt, "h"))
		seed := rapid.Uint64().Draw(rt, "seed")

		start := geom.Position{X: uint(rapid.IntRange(0, int(w)-1).Draw(rt, "sx")), Y: uint(rapid.IntRange(0, int(h)-1).Draw(rt, "sy"))}
		goal := geom.Position{X: uint(rapid.IntRange(0, int(w)-1).Draw(rt, "gx")), Y: uint(rapid.IntRange(0, int(h)-1).Draw(rt, "gy"))}

		walk, err := New([]geom.Position{start, goal}, testParams(), rng.NewFromSeed(seed))
		if err != nil {
			rt.Fatal(err)
		}
		m := gridmap.New(w, h, 8, tile.Hookable)
		for i := 0; i < 20000 && !walk.Finished(); i++ {
			if err := walk.Step(m); err != nil {
				// OutOfBounds/NoGoal are legitimate terminal outcomes on
				// degenerate randomized inputs; anything else is a bug.
				if errors.Is(err, tile.ErrOutOfBounds) || errors.Is(err, tile.ErrNoGoal) {
					return
				}
				rt.Fatalf("unexpected step error: %v", err)
			}
			if !m.PosInBounds(walk.Pos()) {
				rt.Fatalf("walker left the grid at %v (map %dx%d)", walk.Pos(), w, h)
			}
		}
	})
}
