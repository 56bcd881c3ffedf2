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

	"github.com/kbukum/genc/errors"
	"github.com/kbukum/genc/logger"
)

// Metric instrument names.
const (
	MetricPullTotal    = "generator.pull.total"
	MetricPullDuration = "generator.pull.duration"
	MetricErrorTotal   = "generator.error.total"
	MetricTakeTotal    = "generator.take.total"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
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

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Internal("creating metric exporter", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, errors.Internal("creating resource", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for generator pulls.
type Metrics struct {
	pullTotal    metric.Int64Counter
	pullDuration metric.Float64Histogram
	errorTotal   metric.Int64Counter
	takeTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	pullTotal, err := meter.Int64Counter(MetricPullTotal,
		metric.WithDescription("Total number of generator pulls"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricPullTotal, err)
	}

	pullDuration, err := meter.Float64Histogram(MetricPullDuration,
		metric.WithDescription("Duration of generator pulls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricPullDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrorTotal,
		metric.WithDescription("Total failed generator pulls by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorTotal, err)
	}

	takeTotal, err := meter.Int64Counter(MetricTakeTotal,
		metric.WithDescription("Total bounded takes by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricTakeTotal, err)
	}

	return &Metrics{
		pullTotal:    pullTotal,
		pullDuration: pullDuration,
		errorTotal:   errorTotal,
		takeTotal:    takeTotal,
	}, nil
}

// RecordPull records one generator pull. A non-nil err is also counted
// under its error code.
func (m *Metrics) RecordPull(ctx context.Context, generator string, err error, duration time.Duration) {
	status := statusOK
	if err != nil {
		status = statusError
		m.RecordError(ctx, generator, err)
	}
	m.pullTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrGenerator, generator),
		attribute.String(AttrStatus, status),
	))
	m.pullDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrGenerator, generator),
	))
}

// RecordError records a failed pull by error code.
func (m *Metrics) RecordError(ctx context.Context, generator string, err error) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrGenerator, generator),
		attribute.String(AttrErrorCode, errorCode(err)),
	))
}

// RecordTake records a completed bounded take of count values.
func (m *Metrics) RecordTake(ctx context.Context, generator string, count int, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	m.takeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrGenerator, generator),
		attribute.String(AttrStatus, status),
		attribute.Int(AttrCount, count),
	))
}

const (
	statusOK    = "ok"
	statusError = "error"
)

// errorCode labels err by its AppError code, or "UNKNOWN" for foreign errors
// such as those returned by user thunks.
func errorCode(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return string(code)
	}
	return "UNKNOWN"
}
