// Package observability provides OpenTelemetry tracing and metrics for
// configuration loading.
//
// The loader starts a "config.load" span for every finalize call and records
// load counts and durations through LoadMetrics. Both use the global otel
// providers unless the caller supplies its own; host programs that have no
// telemetry setup of their own can install OTLP exporters with InitTracer
// and InitMeter.
package observability
