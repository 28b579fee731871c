// Package observability wires OpenTelemetry tracing and metrics into
// numkit evaluations.
//
// Setup installs OTLP/HTTP trace and metric exporters when enabled:
//
//	shutdown, err := observability.Setup(ctx, cfg, observability.ServiceInfo{Name: "numkit"})
//	defer shutdown(ctx)
//
// Track wraps a single evaluation in a span and records its outcome:
//
//	metrics, _ := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
//	v, err := observability.Track(ctx, metrics, "pi", func(ctx context.Context) (float64, error) {
//	    return piseries.SolveContext(ctx, strategy, piseries.Limit)
//	})
//
// InstrumentStrategy decorates an accumulate.Strategy so that every fold
// it performs is counted and timed.
package observability
