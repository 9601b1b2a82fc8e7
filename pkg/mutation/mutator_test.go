package mutation

import (
	"testing"

	"github.com/dshills/tunnelgen/pkg/geom"
)

func TestForceDirection_FinishesAfterSteps(t *testing.T) {
	f := &ForceDirection{Dir: geom.Right, Steps: 2}
	state := &WalkerState{}

	outcome, err := f.Mutate(state)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Processing {
		t.Fatalf("expected Processing after step 1, got %v", outcome)
	}
	if state.DirectionOverride == nil || *state.DirectionOverride != geom.Right {
		t.Fatal("expected direction override to be set")
	}

	outcome, err = f.Mutate(state)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Finished {
		t.Fatalf("expected Finished after step 2, got %v", outcome)
	}
}

func TestLoop_BoundedAdvancesAndFinishes(t *testing.T) {
	a := &ForceDirection{Dir: geom.Up, Steps: 1}
	b := &ForceDirection{Dir: geom.Down, Steps: 1}
	loop := NewLoop(a, b)
	state := &WalkerState{}

	outcome, err := loop.Bounded(state)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Processing {
		t.Fatalf("expected Processing after first mutator, got %v", outcome)
	}
	if *state.DirectionOverride != geom.Up {
		t.Fatal("expected first mutator's direction")
	}

	outcome, err = loop.Bounded(state)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != Finished {
		t.Fatalf("expected Finished after second mutator, got %v", outcome)
	}
	if *state.DirectionOverride != geom.Down {
		t.Fatal("expected second mutator's direction")
	}
}

func TestLoop_EndlessRestarts(t *testing.T) {
	a := &ForceDirection{Dir: geom.Up, Steps: 1}
	loop := NewLoop(a)
	state := &WalkerState{}

	for i := 0; i < 3; i++ {
		if _, err := loop.Endless(state); err != nil {
			t.Fatal(err)
		}
	}
	if *state.DirectionOverride != geom.Up {
		t.Fatal("expected direction override to keep firing across restarts")
	}
}

func TestBuild_DispatchesRegisteredKind(t *testing.T) {
	m, err := Build(Spec{Kind: "force_direction", Params: map[string]any{"steps": 3, "direction": int(geom.Left)}})
	if err != nil {
		t.Fatal(err)
	}
	fd, ok := m.(*ForceDirection)
	if !ok {
		t.Fatalf("expected *ForceDirection, got %T", m)
	}
	if fd.Dir != geom.Left || fd.Steps != 3 {
		t.Fatalf("unexpected mutator config: %+v", fd)
	}
}

func TestBuild_UnknownKindErrors(t *testing.T) {
	if _, err := Build(Spec{Kind: "does_not_exist"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
