// Package metrics exposes a small Prometheus Recorder for generation-run
// observability: steps taken, finalize wall-clock, skips placed, and
// per-pass post-processing duration. A nil *Recorder is a valid no-op, so
// callers that never wire metrics pay nothing for the instrumentation.
package metrics
