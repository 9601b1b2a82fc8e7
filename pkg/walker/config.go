package walker

import (
	"fmt"

	"github.com/dshills/tunnelgen/pkg/rng"
)

// PulseParams configures the periodic passage-widening behavior. A nil
// *PulseParams on Params disables pulsing entirely.
type PulseParams struct {
	StraightDelay uint `yaml:"straightDelay"`
	CornerDelay   uint `yaml:"cornerDelay"`
	MaxKernelSize uint `yaml:"maxKernelSize"`
}

// Params bundles every tunable the walker consults. All probability fields
// are in [0,1].
type Params struct {
	InnerSizeMutProb float32 `yaml:"innerSizeMutProb"`
	OuterSizeMutProb float32 `yaml:"outerSizeMutProb"`
	InnerRadMutProb  float32 `yaml:"innerRadMutProb"`
	OuterRadMutProb  float32 `yaml:"outerRadMutProb"`
	MomentumProb     float32 `yaml:"momentumProb"`

	ShiftWeights     rng.RandomDistConfig[int]   `yaml:"shiftWeights"`
	InnerSizeProbs   rng.RandomDistConfig[uint]  `yaml:"innerSizeProbs"`
	OuterMarginProbs rng.RandomDistConfig[uint]  `yaml:"outerMarginProbs"`
	CircProbs        rng.RandomDistConfig[float32] `yaml:"circProbs"`

	Pulse *PulseParams `yaml:"pulse,omitempty"`

	FadeSteps   uint `yaml:"fadeSteps"`
	FadeMaxSize uint `yaml:"fadeMaxSize"`
	FadeMinSize uint `yaml:"fadeMinSize"`

	PlatformDistanceMin uint `yaml:"platformDistanceMin"`
	PlatformDistanceMax uint `yaml:"platformDistanceMax"`

	WaypointReachedDist uint `yaml:"waypointReachedDist"`
}

// Validate checks field ranges that New cannot catch on its own (New only
// fails once it tries to build an alias table from an empty distribution).
func (p Params) Validate() error {
	probs := []struct {
		name string
		v    float32
	}{
		{"innerSizeMutProb", p.InnerSizeMutProb},
		{"outerSizeMutProb", p.OuterSizeMutProb},
		{"innerRadMutProb", p.InnerRadMutProb},
		{"outerRadMutProb", p.OuterRadMutProb},
		{"momentumProb", p.MomentumProb},
	}
	for _, pr := range probs {
		if pr.v < 0 || pr.v > 1 {
			return fmt.Errorf("walker: %s must be in [0,1], got %f", pr.name, pr.v)
		}
	}
	if len(p.ShiftWeights.Values) == 0 {
		return fmt.Errorf("walker: shiftWeights must not be empty")
	}
	if len(p.InnerSizeProbs.Values) == 0 {
		return fmt.Errorf("walker: innerSizeProbs must not be empty")
	}
	if len(p.OuterMarginProbs.Values) == 0 {
		return fmt.Errorf("walker: outerMarginProbs must not be empty")
	}
	if len(p.CircProbs.Values) == 0 {
		return fmt.Errorf("walker: circProbs must not be empty")
	}
	if p.PlatformDistanceMin > p.PlatformDistanceMax {
		return fmt.Errorf("walker: platformDistanceMin (%d) must be <= platformDistanceMax (%d)", p.PlatformDistanceMin, p.PlatformDistanceMax)
	}
	return nil
}
