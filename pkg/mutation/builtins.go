package mutation

import (
	"fmt"

	"github.com/dshills/tunnelgen/pkg/geom"
)

// ForceDirection overrides the walker's next shift to a fixed direction for
// a bounded number of steps, then reports Finished.
type ForceDirection struct {
	Dir       geom.Direction
	Steps     uint
	remaining uint
	started   bool
}

func (f *ForceDirection) Mutate(state *WalkerState) (Outcome, error) {
	if !f.started {
		f.remaining = f.Steps
		f.started = true
	}
	if f.remaining == 0 {
		return Finished, nil
	}
	d := f.Dir
	state.DirectionOverride = &d
	f.remaining--
	if f.remaining == 0 {
		return Finished, nil
	}
	return Processing, nil
}

func (f *ForceDirection) Reset() {
	f.started = false
	f.remaining = 0
}

// RerouteToGoal overrides the walker's goal for a bounded number of steps,
// then reports Finished, restoring normal goal progression.
type RerouteToGoal struct {
	Goal      geom.Position
	Steps     uint
	remaining uint
	started   bool
}

func (r *RerouteToGoal) Mutate(state *WalkerState) (Outcome, error) {
	if !r.started {
		r.remaining = r.Steps
		r.started = true
	}
	if r.remaining == 0 {
		return Finished, nil
	}
	g := r.Goal
	state.GoalOverride = &g
	r.remaining--
	if r.remaining == 0 {
		return Finished, nil
	}
	return Processing, nil
}

func (r *RerouteToGoal) Reset() {
	r.started = false
	r.remaining = 0
}

func init() {
	Register("force_direction", func(params map[string]any) (Mutator, error) {
		steps, ok := params["steps"].(int)
		if !ok {
			return nil, fmt.Errorf("mutation: force_direction requires int param %q", "steps")
		}
		dir, ok := params["direction"].(int)
		if !ok {
			return nil, fmt.Errorf("mutation: force_direction requires int param %q", "direction")
		}
		return &ForceDirection{Dir: geom.Direction(dir), Steps: uint(steps)}, nil
	})

	Register("reroute_to_goal", func(params map[string]any) (Mutator, error) {
		steps, ok := params["steps"].(int)
		if !ok {
			return nil, fmt.Errorf("mutation: reroute_to_goal requires int param %q", "steps")
		}
		x, okX := params["x"].(int)
		y, okY := params["y"].(int)
		if !okX || !okY {
			return nil, fmt.Errorf("mutation: reroute_to_goal requires int params %q and %q", "x", "y")
		}
		return &RerouteToGoal{Goal: geom.Position{X: uint(x), Y: uint(y)}, Steps: uint(steps)}, nil
	})
}
