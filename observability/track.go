package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/errors"
)

// Evaluation statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Track runs fn inside a span named op and records its outcome on m.
// A nil m skips metric recording.
func Track(ctx context.Context, m *Metrics, op string, fn func(ctx context.Context) (float64, error)) (float64, error) {
	return track(ctx, m, op, "", fn)
}

func track(ctx context.Context, m *Metrics, op, strategy string, fn func(ctx context.Context) (float64, error)) (float64, error) {
	attrs := []attribute.KeyValue{attribute.String(AttrOperation, op)}
	if strategy != "" {
		attrs = append(attrs, attribute.String(AttrStrategy, strategy))
	}
	ctx, span := StartSpan(ctx, op, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	v, err := fn(ctx)
	elapsed := time.Since(start)

	status := StatusOK
	if err != nil {
		status = StatusError
		code := string(errors.ErrCodeInternal)
		if appErr, ok := errors.AsAppError(err); ok {
			code = string(appErr.Code)
		}
		SetSpanError(ctx, err)
		SetSpanAttribute(ctx, AttrErrorCode, code)
		if m != nil {
			m.RecordError(ctx, op, code)
		}
	} else {
		SetSpanAttribute(ctx, AttrResult, v)
	}
	SetSpanAttribute(ctx, AttrStatus, status)

	if m != nil {
		m.RecordEvaluation(ctx, op, strategy, status, elapsed)
	}
	return v, err
}

// instrumented decorates a strategy with tracing and metrics.
type instrumented struct {
	inner   accumulate.Strategy
	metrics *Metrics
}

// InstrumentStrategy returns a strategy that behaves like s and records
// every fold on m under the "accumulate" operation.
func InstrumentStrategy(s accumulate.Strategy, m *Metrics) accumulate.ContextStrategy {
	return instrumented{inner: s, metrics: m}
}

func (i instrumented) Name() string { return i.inner.Name() }

func (i instrumented) Accumulate(combine accumulate.Combiner, term accumulate.Term, start float64, next accumulate.Next, end float64, identity float64) float64 {
	v, _ := i.AccumulateContext(context.Background(), combine, term, start, next, end, identity)
	return v
}

func (i instrumented) AccumulateContext(ctx context.Context, combine accumulate.Combiner, term accumulate.Term, start float64, next accumulate.Next, end float64, identity float64) (float64, error) {
	return track(ctx, i.metrics, "accumulate", i.inner.Name(), func(ctx context.Context) (float64, error) {
		return accumulate.AccumulateContext(ctx, i.inner, combine, term, start, next, end, identity)
	})
}
