package mapgen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/tunnelgen/pkg/geom"
	"github.com/dshills/tunnelgen/pkg/gridmap"
	"github.com/dshills/tunnelgen/pkg/metrics"
	"github.com/dshills/tunnelgen/pkg/mutation"
	"github.com/dshills/tunnelgen/pkg/postprocess"
	"github.com/dshills/tunnelgen/pkg/walker"
	"github.com/dshills/tunnelgen/pkg/waypoint"
)

// Stats is a read-only snapshot of a finished (or in-progress) run.
type Stats struct {
	Steps               uint
	StartPos            geom.Position
	FinishPos           geom.Position
	PostProcessDuration time.Duration
}

// Generator binds a Config to a live Map and Walker and drives generation
// to completion.
type Generator struct {
	Map    *gridmap.Map
	Walker *walker.Walker

	cfg    *Config
	log    zerolog.Logger
	rec    *metrics.Recorder
	mutate *mutation.Loop
	stats  Stats
}

// New builds a Generator from cfg: it validates the config, binds the
// normalized waypoints to grid positions, and constructs the map and
// walker. Logging and metrics default to no-ops; wire them with SetLogger
// and SetRecorder before calling Finalize if desired.
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fill, err := parseTile(cfg.InitialFill)
	if err != nil {
		return nil, err
	}

	waypoints, err := waypoint.Bind(cfg.Waypoints, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("binding waypoints: %w", err)
	}

	w, err := walker.New(waypoints, cfg.Walker, cfg.rng())
	if err != nil {
		return nil, fmt.Errorf("constructing walker: %w", err)
	}

	var loop *mutation.Loop
	if len(cfg.Mutators) > 0 {
		mutators := make([]mutation.Mutator, 0, len(cfg.Mutators))
		for _, spec := range cfg.Mutators {
			mut, err := mutation.Build(spec)
			if err != nil {
				return nil, fmt.Errorf("building mutator %q: %w", spec.Kind, err)
			}
			mutators = append(mutators, mut)
		}
		loop = mutation.NewLoop(mutators...)
	}

	return &Generator{
		Map:    gridmap.New(cfg.Width, cfg.Height, cfg.ChunkSize, fill),
		Walker: w,
		cfg:    cfg,
		log:    zerolog.Nop(),
		mutate: loop,
	}, nil
}

// SetLogger wires structured logging. The zero value (zerolog.Nop()) is
// used until this is called.
func (g *Generator) SetLogger(l zerolog.Logger) {
	g.log = l
}

// SetRecorder wires Prometheus metrics. A nil Recorder (the default) makes
// every observation a no-op.
func (g *Generator) SetRecorder(r *metrics.Recorder) {
	g.rec = r
}

// SetMutationLoop wires a pluggable step mutation engine, overriding any
// loop already built from the config's Mutators. A nil Loop (the default)
// makes Finalize drive the walker with no steering overrides at all.
func (g *Generator) SetMutationLoop(l *mutation.Loop) {
	g.mutate = l
}

// Stats returns the most recent Finalize run's statistics.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Finalize drives the walker until it reports Finished or maxSteps is
// reached (maxSteps==0 means unbounded), then runs the fixed
// post-processing pipeline over the carved map. ctx is checked between
// walker steps and before post-processing; cancellation returns ctx.Err()
// with the map left exactly as carved so far. Any post-processing error
// aborts the remaining passes, and the partially mutated Map is left in
// place for inspection.
func (g *Generator) Finalize(ctx context.Context, maxSteps uint) error {
	start := time.Now()

	for !g.Walker.Finished() {
		if maxSteps > 0 && g.Walker.Steps() >= maxSteps {
			g.log.Warn().Uint("maxSteps", maxSteps).Msg("walker stopped before reaching every waypoint")
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if g.mutate != nil {
			state := mutation.WalkerState{Pos: g.Walker.Pos(), Steps: g.Walker.Steps()}
			if _, err := g.mutate.Bounded(&state); err != nil {
				return fmt.Errorf("mutation: %w", err)
			}
			g.Walker.ApplyOverrides(state.DirectionOverride, state.GoalOverride)
		}
		if err := g.Walker.Step(g.Map); err != nil {
			return fmt.Errorf("walker step: %w", err)
		}
		g.rec.ObserveStep()
	}

	g.stats.Steps = g.Walker.Steps()
	g.stats.StartPos = g.Walker.StartPos()
	g.stats.FinishPos = g.Walker.Pos()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ppStart := time.Now()
	ppCfg := postprocess.Config{
		MinFreezeSize:     g.cfg.Generator.MinFreezeSize,
		MaxDistance:       g.cfg.Generator.MaxDistance,
		SkipMinLen:        g.cfg.Generator.SkipMinLen,
		SkipMaxLen:        g.cfg.Generator.SkipMaxLen,
		SkipMinSpacingSqr: g.cfg.Generator.SkipMinSpacingSqr,
	}
	ppResult, err := postprocess.Run(g.Map, g.stats.StartPos, g.stats.FinishPos, ppCfg)
	if err != nil {
		return fmt.Errorf("postprocess: %w", err)
	}
	g.stats.PostProcessDuration = time.Since(ppStart)
	g.rec.ObservePostPass("all", g.stats.PostProcessDuration)
	g.rec.ObserveFreezeBlobsRemoved(ppResult.FreezeBlobsRemoved)
	g.rec.ObserveSkipsPlaced(ppResult.SkipsPlaced)
	g.rec.ObserveFinalize(time.Since(start))

	g.log.Info().
		Uint("steps", g.stats.Steps).
		Dur("postProcess", g.stats.PostProcessDuration).
		Msg("map finalized")
	return nil
}

// Clear resets only the Map: every tile returns to InitialFill and the
// dirty bitmap is cleared. The Walker (and its RNG stream) is untouched,
// so a subsequent Finalize would have nothing left to step through; Clear
// exists for callers that want to re-run post-processing, tooling, or a
// fresh walker built over the same Map dimensions.
func (g *Generator) Clear() {
	g.Map.Clear()
}
