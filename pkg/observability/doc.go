// Package observability provides structured logging and per-run Prometheus metrics
// for the code generator.
//
// # Structured Logging
//
// Create logger:
//
//	logger, err := observability.NewLogger("info", "text", os.Stderr)
//	observability.RunLogger(logger, runID).Info("Generation started")
//
// # Run Metrics
//
// Metrics live on a private registry and are written once per run to a
// node-exporter textfile:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	metrics.ArtifactsWritten.WithLabelValues("java").Inc()
//	err := metrics.WriteTextfile("/var/lib/node_exporter/codecgen.prom")
//
// # Related Packages
//
//   - pkg/config: logging and metrics configuration
package observability
