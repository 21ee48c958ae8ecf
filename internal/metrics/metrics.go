// Package metrics holds the Prometheus collectors shared by the engine,
// the persistence manager and the dissemination server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TicksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_ticks_processed_total",
		Help: "Total number of ticks applied to the contract state cache.",
	})
	TicksIgnored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_ticks_ignored_total",
		Help: "Total number of ticks for codes outside the instrument registry.",
	})
	TicksFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_ticks_failed_total",
		Help: "Total number of malformed ticks dropped.",
	})
	PointsAppended = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basis_points_appended_total",
		Help: "Total number of basis points appended, by contract.",
	}, []string{"contract"})
	StalePointsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_stale_points_dropped_total",
		Help: "Total number of basis points dropped because they belong to another day.",
	})

	Subscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "basis_ws_subscribers",
		Help: "Current number of connected basis subscribers.",
	})
	PointsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_points_sent_total",
		Help: "Total number of basis points written to subscribers.",
	})

	SnapshotSaves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basis_snapshot_saves_total",
		Help: "Total number of snapshot save attempts, by result.",
	}, []string{"result"})
	SnapshotSaveLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "basis_snapshot_save_seconds",
		Help:    "Latency of writing a snapshot to disk.",
		Buckets: prometheus.DefBuckets,
	})

	PublishErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "basis_publish_errors_total",
		Help: "Total number of basis points that could not be published to redis.",
	})
)

func init() {
	prometheus.MustRegister(
		TicksProcessed,
		TicksIgnored,
		TicksFailed,
		PointsAppended,
		StalePointsDropped,
		Subscribers,
		PointsSent,
		SnapshotSaves,
		SnapshotSaveLatency,
		PublishErrors,
	)
}
