package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records generation-run counters and histograms. The zero value
// is not usable; build one with NewRecorder. A nil *Recorder is valid and
// every method is a no-op against it, so Generator can hold an unset
// Recorder unconditionally.
type Recorder struct {
	steps             prometheus.Counter
	skipsPlaced       prometheus.Counter
	freezeBlobRemoved prometheus.Counter
	finalizeDuration  prometheus.Histogram
	postPassDuration  *prometheus.HistogramVec
}

// NewRecorder registers the generator's metrics against reg and returns a
// Recorder wired to them.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tunnelgen",
			Name:      "walker_steps_total",
			Help:      "Number of walker steps taken across all generation runs.",
		}),
		skipsPlaced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tunnelgen",
			Name:      "skips_placed_total",
			Help:      "Number of skip corridors carved by generate_all_skips.",
		}),
		freezeBlobRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tunnelgen",
			Name:      "freeze_blobs_removed_total",
			Help:      "Number of undersized freeze blobs rewritten to empty.",
		}),
		finalizeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tunnelgen",
			Name:      "finalize_duration_seconds",
			Help:      "Wall-clock time spent in Generator.Finalize.",
			Buckets:   prometheus.DefBuckets,
		}),
		postPassDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tunnelgen",
			Name:      "postprocess_pass_duration_seconds",
			Help:      "Wall-clock time spent in each post-processing pass.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pass"}),
	}
}

// ObserveStep increments the walker step counter by one.
func (r *Recorder) ObserveStep() {
	if r == nil {
		return
	}
	r.steps.Inc()
}

// ObserveSkipsPlaced adds n to the skips-placed counter.
func (r *Recorder) ObserveSkipsPlaced(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.skipsPlaced.Add(float64(n))
}

// ObserveFreezeBlobsRemoved adds n to the freeze-blobs-removed counter.
func (r *Recorder) ObserveFreezeBlobsRemoved(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.freezeBlobRemoved.Add(float64(n))
}

// ObserveFinalize records the total Finalize duration.
func (r *Recorder) ObserveFinalize(d time.Duration) {
	if r == nil {
		return
	}
	r.finalizeDuration.Observe(d.Seconds())
}

// ObservePostPass records a single post-processing pass's duration.
func (r *Recorder) ObservePostPass(pass string, d time.Duration) {
	if r == nil {
		return
	}
	r.postPassDuration.WithLabelValues(pass).Observe(d.Seconds())
}
