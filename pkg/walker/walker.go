package walker

import (
	"math"
	"sort"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/kernel"
	"github.com/dshills/tunnelgen/pkg/postprocess"
	"github.com/dshills/tunnelgen/pkg/rng"
	"github.com/dshills/tunnelgen/pkg/tile"
)

// Walker is the stochastic carving agent. Its initial position is the
// first entry of the bound waypoint list; it then navigates toward each
// subsequent waypoint in order, finishing once the last one is reached.
// A single-waypoint list therefore starts already finished, at zero steps:
// this is deliberate (see postprocess's "finish wins" room-overlap rule).
type Walker struct {
	pos      geom.Position
	startPos geom.Position
	steps    uint

	innerKernel kernel.Kernel
	outerKernel kernel.Kernel

	waypoints []geom.Position
	goalIndex int
	finished  bool

	stepsSincePlatform uint
	lastShift          *geom.Direction
	pulseCounter       uint

	pendingDir  *geom.Direction
	pendingGoal *geom.Position

	params Params
	rnd    *rng.RNG

	shiftDist       *rng.RandomDist[int]
	innerSizeDist   *rng.RandomDist[uint]
	outerMarginDist *rng.RandomDist[uint]
	circDist        *rng.RandomDist[float32]
}

// New builds a Walker from a non-empty bound waypoint list. It errors if
// any of the configured distributions (shift weights, kernel-mutation
// value tables) is empty or has mismatched value and probability lengths;
// an all-zero weight table is normalized to uniform, not rejected.
func New(waypoints []geom.Position, params Params, r *rng.RNG) (*Walker, error) {
	if len(waypoints) == 0 {
		return nil, tile.NewError(tile.NoGoal, "walker requires at least one waypoint")
	}

	shiftDist, err := rng.NewRandomDist(params.ShiftWeights)
	if err != nil {
		return nil, err
	}
	innerSizeDist, err := rng.NewRandomDist(params.InnerSizeProbs)
	if err != nil {
		return nil, err
	}
	outerMarginDist, err := rng.NewRandomDist(params.OuterMarginProbs)
	if err != nil {
		return nil, err
	}
	circDist, err := rng.NewRandomDist(params.CircProbs)
	if err != nil {
		return nil, err
	}

	w := &Walker{
		pos:             waypoints[0],
		startPos:        waypoints[0],
		waypoints:       waypoints,
		goalIndex:       1,
		params:          params,
		rnd:             r,
		shiftDist:       shiftDist,
		innerSizeDist:   innerSizeDist,
		outerMarginDist: outerMarginDist,
		circDist:        circDist,
	}
	if w.goalIndex >= len(w.waypoints) {
		w.finished = true
	}
	w.fade()
	return w, nil
}

// Pos returns the walker's current position.
func (w *Walker) Pos() geom.Position { return w.pos }

// StartPos returns the walker's starting position (the first waypoint).
func (w *Walker) StartPos() geom.Position { return w.startPos }

// Steps returns the number of moves taken so far.
func (w *Walker) Steps() uint { return w.steps }

// Finished reports whether the walker has visited every waypoint.
func (w *Walker) Finished() bool { return w.finished }

// ApplyOverrides installs a one-shot direction and/or goal override,
// consumed and cleared by the next Step. A mutation engine calls this
// before Step to steer the walker's navigation for that single move; the
// goal-reached check still tests against the real active waypoint, so an
// override can redirect a step's path without ever finishing the walker
// early.
func (w *Walker) ApplyOverrides(dir *geom.Direction, goal *geom.Position) {
	w.pendingDir = dir
	w.pendingGoal = goal
}

// Step advances the walker by one move: it mutates the kernel (for every
// call after the first), takes a probabilistic step toward the current
// goal, and checks for platform placement. It errors with
// tile.ErrWalkerFinished if called after Finished reports true.
func (w *Walker) Step(m *gridmap.Map) error {
	if w.finished {
		return tile.NewError(tile.WalkerFinished, "step called after walker finished")
	}
	if w.steps > 0 {
		w.mutateKernel()
	}
	if err := w.probabilisticStep(m); err != nil {
		return err
	}
	w.checkPlatform(m)
	return nil
}

// fade implements the initial kernel-size ramp: while steps <= fade_steps,
// both kernels shrink linearly from fade_max_size toward fade_min_size.
func (w *Walker) fade() {
	ratio := 1.0
	if w.params.FadeSteps > 0 {
		ratio = float64(w.steps) / float64(w.params.FadeSteps)
	}
	size := math.Floor(float64(w.params.FadeMaxSize) + (float64(w.params.FadeMinSize)-float64(w.params.FadeMaxSize))*ratio)
	if size < 1 {
		size = 1
	}
	innerSize := uint(size)
	w.innerKernel = kernel.New(innerSize, 0)
	w.outerKernel = kernel.New(innerSize+2, 0)
}

// mutateKernel runs before every step past the first: during the fade
// window it re-derives the ramped kernel sizes; afterward it probabilistically
// resamples each of the four kernel parameters, preserving the PRNG cadence
// (every skipped sample still costs exactly two words) so the word count
// after N calls depends only on N, not on which branches fired.
func (w *Walker) mutateKernel() {
	if w.steps <= w.params.FadeSteps {
		w.fade()
		return
	}

	innerSize := w.innerKernel.Size
	outerMargin := w.outerKernel.Size - w.innerKernel.Size
	innerCirc := w.innerKernel.Circularity
	outerCirc := w.outerKernel.Circularity
	mutated := false

	if w.rnd.GenBool(w.params.InnerSizeMutProb) {
		innerSize = w.innerSizeDist.Sample(w.rnd)
		mutated = true
	} else {
		w.rnd.SkipN(2)
	}

	if w.rnd.GenBool(w.params.OuterSizeMutProb) {
		outerMargin = w.outerMarginDist.Sample(w.rnd)
		mutated = true
	} else {
		w.rnd.SkipN(2)
	}

	if w.rnd.GenBool(w.params.InnerRadMutProb) {
		innerCirc = float64(w.circDist.Sample(w.rnd))
		mutated = true
	} else {
		w.rnd.SkipN(2)
	}

	if w.rnd.GenBool(w.params.OuterRadMutProb) {
		outerCirc = float64(w.circDist.Sample(w.rnd))
		mutated = true
	} else {
		w.rnd.SkipN(2)
	}

	if !mutated {
		return
	}

	outerSize := innerSize + outerMargin
	if innerSize <= 3 {
		innerCirc = 0
	}
	if outerSize <= 3 {
		outerCirc = 0
	}

	w.innerKernel = kernel.New(innerSize, innerCirc)
	w.outerKernel = kernel.New(outerSize, outerCirc)
}

type rankedShift struct {
	dir   geom.Direction
	sqDst float64
}

// probabilisticStep implements a single navigation move: rank the four
// shifts by post-move distance to the current goal, sample a rank,
// optionally override with momentum, move, stamp (or pulse), and test
// whether the goal has been reached.
func (w *Walker) probabilisticStep(m *gridmap.Map) error {
	if w.goalIndex >= len(w.waypoints) {
		return tile.NewError(tile.NoGoal, "no active waypoint")
	}
	goal := w.waypoints[w.goalIndex]
	navGoal := goal
	if w.pendingGoal != nil {
		navGoal = *w.pendingGoal
	}

	ranks := make([]rankedShift, 4)
	for i, d := range geom.AllDirections {
		np, ok := w.pos.Shift(d)
		if !ok || !m.PosInBounds(np) {
			ranks[i] = rankedShift{dir: d, sqDst: math.Inf(1)}
			continue
		}
		ranks[i] = rankedShift{dir: d, sqDst: float64(geom.SqDist(np, navGoal))}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].sqDst < ranks[j].sqDst })

	rankIdx := w.shiftDist.Sample(w.rnd)
	dir := ranks[rankIdx].dir

	if w.lastShift != nil && w.rnd.GenBool(w.params.MomentumProb) {
		dir = *w.lastShift
	}

	if w.pendingDir != nil {
		dir = *w.pendingDir
	}
	w.pendingDir = nil
	w.pendingGoal = nil

	newPos, ok := w.pos.Shift(dir)
	if !ok || !m.PosInBounds(newPos) {
		return tile.NewError(tile.OutOfBounds, "selected shift %v from %v escapes the grid", dir, w.pos)
	}
	w.pos = newPos
	w.steps++

	sameDir := w.lastShift != nil && dir == *w.lastShift
	pulsed := w.firePulse(m, sameDir)

	if !pulsed {
		if _, err := m.ApplyKernel(w.pos, w.outerKernel, tile.Freeze, tile.Force); err != nil {
			return err
		}
		innerTile := tile.Empty
		if w.steps < w.params.FadeSteps {
			innerTile = tile.EmptyReserved
		}
		if _, err := m.ApplyKernel(w.pos, w.innerKernel, innerTile, tile.Force); err != nil {
			return err
		}
	}

	d := dir
	w.lastShift = &d

	reachedDist := uint64(w.params.WaypointReachedDist) * uint64(w.params.WaypointReachedDist)
	if geom.SqDist(w.pos, goal) <= reachedDist {
		w.goalIndex++
		if w.goalIndex >= len(w.waypoints) {
			w.finished = true
		}
	}
	return nil
}

// firePulse implements the periodic passage-widening sub-state-machine. It
// reports whether a pulse fired this step (in which case the caller must
// skip the regular inner/outer stamp).
func (w *Walker) firePulse(m *gridmap.Map, sameDir bool) bool {
	p := w.params.Pulse
	if p == nil {
		return false
	}

	fire := (sameDir && w.pulseCounter > p.StraightDelay) || (!sameDir && w.pulseCounter > p.CornerDelay)
	if fire {
		outer := kernel.New(w.innerKernel.Size+4, 0)
		inner := kernel.New(w.innerKernel.Size+2, 0)
		_, _ = m.ApplyKernel(w.pos, outer, tile.Freeze, tile.Force)
		_, _ = m.ApplyKernel(w.pos, inner, tile.Empty, tile.Force)
		w.pulseCounter = 0
		return true
	}

	if sameDir && w.innerKernel.Size <= p.MaxKernelSize {
		w.pulseCounter++
	} else {
		w.pulseCounter = 0
	}
	return false
}

// checkPlatform implements the platform-placement three-way branch.
// Insufficient clearance is not an error: the attempt is silently skipped
// until steps_since_platform exceeds max, forcing a room.
func (w *Walker) checkPlatform(m *gridmap.Map) {
	w.stepsSincePlatform++
	min, max := w.params.PlatformDistanceMin, w.params.PlatformDistanceMax

	if w.stepsSincePlatform < min {
		return
	}
	if w.stepsSincePlatform > max {
		forced, ok := w.pos.ShiftBy(0, 6)
		if ok {
			_ = postprocess.GenerateRoom(m, forced, 5, 3, postprocess.NoZone)
		}
		w.stepsSincePlatform = 0
		return
	}

	tl, ok1 := w.pos.ShiftBy(-3, -3)
	br, ok2 := w.pos.ShiftBy(3, 2)
	if !ok1 || !ok2 || !m.PosInBounds(tl) || !m.PosInBounds(br) {
		return
	}
	allEmpty, err := m.CheckAreaAll(tl, br, tile.Empty)
	if err != nil || !allEmpty {
		return
	}
	ptl, ok3 := w.pos.ShiftBy(-1, 0)
	pbr, ok4 := w.pos.ShiftBy(1, 0)
	if !ok3 || !ok4 {
		return
	}
	if err := m.SetArea(ptl, pbr, tile.Platform, tile.ReplaceEmptyOnly); err == nil {
		w.stepsSincePlatform = 0
	}
}
