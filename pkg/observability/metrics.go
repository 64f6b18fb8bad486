package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of one generator run
type Metrics struct {
	registry *prometheus.Registry

	ArtifactsWritten     *prometheus.CounterVec
	ArtifactsSkipped     *prometheus.CounterVec
	IgnoredEntries       *prometheus.CounterVec
	ValidationViolations *prometheus.CounterVec

	RunDuration       prometheus.Gauge
	LastRunTimestamp  prometheus.Gauge
	LastRunSuccessful prometheus.Gauge
}

// NewMetrics creates and registers all run metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,

		ArtifactsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codecgen_artifacts_written_total",
				Help: "Total number of artifacts written",
			},
			[]string{"language"},
		),
		ArtifactsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codecgen_artifacts_skipped_total",
				Help: "Total number of artifacts skipped",
			},
			[]string{"language", "reason"},
		),
		IgnoredEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codecgen_ignored_entries_total",
				Help: "Total number of services, methods and custom types matched by an ignore list",
			},
			[]string{"language"},
		),
		ValidationViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codecgen_validation_violations_total",
				Help: "Total number of validation diagnostics",
			},
			[]string{"rule"},
		),

		RunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "codecgen_run_duration_seconds",
				Help: "Duration of the last generator run in seconds",
			},
		),
		LastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "codecgen_last_run_timestamp_seconds",
				Help: "Unix time of the last generator run",
			},
		),
		LastRunSuccessful: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "codecgen_last_run_successful",
				Help: "Whether the last generator run succeeded (1) or failed (0)",
			},
		),
	}

	registry.MustRegister(
		m.ArtifactsWritten,
		m.ArtifactsSkipped,
		m.IgnoredEntries,
		m.ValidationViolations,
		m.RunDuration,
		m.LastRunTimestamp,
		m.LastRunSuccessful,
	)

	return m
}

// WriteTextfile writes every metric to path in the text exposition format, for
// the node exporter textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
