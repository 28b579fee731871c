package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMeter creates an OTLP/HTTP meter provider and installs it globally.
func InitMeter(ctx context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricEvaluations = "numkit.evaluations"
	MetricDuration    = "numkit.evaluation.duration"
	MetricErrors      = "numkit.errors"
)

// Metrics holds the instruments recorded for evaluations.
type Metrics struct {
	evaluations metric.Int64Counter
	duration    metric.Float64Histogram
	errors      metric.Int64Counter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	evaluations, err := meter.Int64Counter(MetricEvaluations,
		metric.WithDescription("Number of evaluations by operation, strategy and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricEvaluations, err)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of evaluations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed evaluations by operation and error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	return &Metrics{
		evaluations: evaluations,
		duration:    duration,
		errors:      errorTotal,
	}, nil
}

// RecordEvaluation records one completed evaluation.
func (m *Metrics) RecordEvaluation(ctx context.Context, operation, strategy, status string, d time.Duration) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("strategy", strategy),
		attribute.String("status", status),
	))
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("strategy", strategy),
	))
}

// RecordError counts a failed evaluation by error code.
func (m *Metrics) RecordError(ctx context.Context, operation, code string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("code", code),
	))
}
