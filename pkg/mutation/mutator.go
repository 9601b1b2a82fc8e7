package mutation

import (
	"fmt"
	"sync"

	"github.com/dshills/tunnelgen/pkg/geom"
)

// WalkerState is the mutable view a Mutator operates on: the walker's
// position/step count and optional overrides a mutator can set for the
// generator to apply before the next probabilistic step.
type WalkerState struct {
	Pos   geom.Position
	Steps uint

	DirectionOverride *geom.Direction
	GoalOverride      *geom.Position
}

// Outcome reports whether a Mutator has more work to do.
type Outcome int

const (
	Processing Outcome = iota
	Finished
)

// Mutator is a stateful, per-step transformation. Reset returns it to its
// initial state so it can be reused by a Loop.
type Mutator interface {
	Mutate(state *WalkerState) (Outcome, error)
	Reset()
}

// Loop composes an ordered sequence of Mutators.
type Loop struct {
	mutators []Mutator
	index    int
}

// NewLoop builds a Loop over the given mutators in order.
func NewLoop(mutators ...Mutator) *Loop {
	return &Loop{mutators: mutators}
}

// Bounded runs the current mutator once per call and moves on to the next
// when it reports Finished, stopping (reporting Finished) once the last
// mutator finishes.
func (l *Loop) Bounded(state *WalkerState) (Outcome, error) {
	if l.index >= len(l.mutators) {
		return Finished, nil
	}
	outcome, err := l.mutators[l.index].Mutate(state)
	if err != nil {
		return Processing, err
	}
	if outcome == Finished {
		l.index++
	}
	if l.index >= len(l.mutators) {
		return Finished, nil
	}
	return Processing, nil
}

// Endless behaves like Bounded but restarts at index 0, resetting every
// mutator, once the last one finishes.
func (l *Loop) Endless(state *WalkerState) (Outcome, error) {
	if len(l.mutators) == 0 {
		return Finished, nil
	}
	outcome, err := l.mutators[l.index].Mutate(state)
	if err != nil {
		return Processing, err
	}
	if outcome == Finished {
		l.index++
		if l.index >= len(l.mutators) {
			l.index = 0
			for _, m := range l.mutators {
				m.Reset()
			}
		}
	}
	return Processing, nil
}

// Reset returns the loop to its first mutator, resetting every member.
func (l *Loop) Reset() {
	l.index = 0
	for _, m := range l.mutators {
		m.Reset()
	}
}

// Spec is the serializable, tagged-variant boundary form of a Mutator:
// Kind names a registered constructor, Params carries its configuration.
type Spec struct {
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params"`
}

// Constructor builds a Mutator from a Spec's params.
type Constructor func(params map[string]any) (Mutator, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register adds a mutator constructor under name. Panics if name is
// already registered.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("mutation: constructor %q already registered", name))
	}
	registry[name] = ctor
}

// Get retrieves a registered constructor by name, or nil if absent.
func Get(name string) Constructor {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Build dispatches a Spec to its registered constructor.
func Build(spec Spec) (Mutator, error) {
	ctor := Get(spec.Kind)
	if ctor == nil {
		return nil, fmt.Errorf("mutation: unknown kind %q", spec.Kind)
	}
	return ctor(spec.Params)
}
