package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/tunnelgen/pkg/debugsvg"
	"github.com/dshills/tunnelgen/pkg/mapgen"
	"github.com/dshills/tunnelgen/pkg/metrics"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Args:  cobra.NoArgs,
	Short: "Carve a map from a YAML config and write a debug SVG snapshot",
	Long:  `Loads a mapgen.Config from --config, drives the walker and post-processing pipeline to completion, and writes an SVG snapshot of the result to --output.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("config", "", "path to a mapgen YAML config (required)")
	generateCmd.Flags().String("output", "map.svg", "path to write the debug SVG snapshot")
	generateCmd.Flags().Uint64("seed", 0, "override the config's seed value (0 means use the config as-is)")
	generateCmd.Flags().Uint("max-steps", 200000, "step budget before giving up on an unfinished walker")
	generateCmd.Flags().String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) until generation completes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return fmt.Errorf("--config flag is required")
	}
	outputPath, _ := cmd.Flags().GetString("output")
	seedOverride, _ := cmd.Flags().GetUint64("seed")
	maxSteps, _ := cmd.Flags().GetUint("max-steps")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	logLevel := zerolog.InfoLevel
	if verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(logLevel)

	cfg, err := mapgen.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if seedOverride != 0 {
		cfg.Seed = ""
		cfg.SeedValue = seedOverride
	}

	g, err := mapgen.New(cfg)
	if err != nil {
		return fmt.Errorf("building generator: %w", err)
	}
	g.SetLogger(log)

	var srv *http.Server
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		g.SetRecorder(metrics.NewRecorder(reg))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		log.Info().Str("addr", metricsAddr).Msg("serving metrics")
	}

	log.Info().Uint("width", cfg.Width).Uint("height", cfg.Height).Msg("starting generation")
	start := time.Now()
	if err := g.Finalize(context.Background(), maxSteps); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	elapsed := time.Since(start)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}

	stats := g.Stats()
	log.Info().
		Uint("steps", stats.Steps).
		Dur("elapsed", elapsed).
		Dur("postProcess", stats.PostProcessDuration).
		Bool("finished", g.Walker.Finished()).
		Msg("generation complete")

	if err := debugsvg.SaveToFile(g.Map, outputPath, debugsvg.DefaultOptions()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	log.Info().Str("path", outputPath).Msg("wrote debug SVG")

	return nil
}
