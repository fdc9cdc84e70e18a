package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/confkit/logger"
	"github.com/kbukum/confkit/version"
)

// Load outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeSourceError = "source_error"
	OutcomeInvalid     = "invalid"
	OutcomeSchemaError = "schema_error"
	OutcomeCanceled    = "canceled"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP HTTP.
// The returned provider must be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(newResource(config.ServiceName, config.ServiceVersion, config.Environment)),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// LoadMetrics holds the instruments recorded for every load call.
type LoadMetrics struct {
	loads        metric.Int64Counter
	loadDuration metric.Float64Histogram
	fileReads    metric.Int64Counter
}

// NewLoadMetrics creates load instruments on the given meter.
func NewLoadMetrics(meter metric.Meter) (*LoadMetrics, error) {
	loads, err := meter.Int64Counter("confkit.loads",
		metric.WithDescription("Configuration load calls by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating confkit.loads counter: %w", err)
	}

	loadDuration, err := meter.Float64Histogram("confkit.load.duration",
		metric.WithDescription("Duration of configuration loads"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating confkit.load.duration histogram: %w", err)
	}

	fileReads, err := meter.Int64Counter("confkit.file_reads",
		metric.WithDescription("Configuration files read by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating confkit.file_reads counter: %w", err)
	}

	return &LoadMetrics{
		loads:        loads,
		loadDuration: loadDuration,
		fileReads:    fileReads,
	}, nil
}

// DefaultLoadMetrics creates load instruments on the global meter provider.
func DefaultLoadMetrics() (*LoadMetrics, error) {
	return NewLoadMetrics(otel.Meter(instrumentationName, metric.WithInstrumentationVersion(version.Short())))
}

// RecordLoad records one finished load call.
func (m *LoadMetrics) RecordLoad(ctx context.Context, mode, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.loads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("outcome", outcome),
	))
	m.loadDuration.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(
		attribute.String("mode", mode),
	))
}

// RecordFileRead records one file read.
func (m *LoadMetrics) RecordFileRead(ctx context.Context, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.fileReads.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}
