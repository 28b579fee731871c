package observability

import (
	"context"
	"math"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/errors"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func counterTotal(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: unexpected data type %T", m.Name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("got endpoint %q, want localhost:4318", cfg.Endpoint)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("got interval %v, want 15s", cfg.Interval)
	}
	if cfg.Enabled {
		t.Error("expected telemetry disabled by default")
	}

	d := DefaultConfig()
	if d.SampleRate != 1.0 || !d.Insecure {
		t.Errorf("unexpected default config %+v", d)
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{}, ServiceInfo{Name: "numkit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetup_Enabled(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	cfg := DefaultConfig()
	cfg.Enabled = true
	shutdown, err := Setup(context.Background(), cfg, ServiceInfo{Name: "numkit", Version: "test", Environment: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// No collector is listening; only the call path matters.
	_ = shutdown(ctx)
}

func TestNewResource(t *testing.T) {
	res, err := newResource(ServiceInfo{Name: "numkit", Version: "1.2.3", Environment: "staging"})
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}
	want := map[string]string{
		"service.name":    "numkit",
		"service.version": "1.2.3",
		AttrEnvironment:   "staging",
	}
	got := map[string]string{}
	for _, kv := range res.Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attribute %s: got %q, want %q", k, got[k], v)
		}
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("sampler(%v): got %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	m.RecordEvaluation(ctx, "pi", "imperative", StatusOK, time.Millisecond)
	m.RecordError(ctx, "root", "INVALID_ARGUMENT")
}

func TestTrack_Success(t *testing.T) {
	sr := installRecorder(t)
	m, reader := newTestMetrics(t)

	got, err := Track(context.Background(), m, "pi", func(context.Context) (float64, error) {
		return math.Pi, nil
	})
	if err != nil || got != math.Pi {
		t.Fatalf("got %v, %v; want %v", got, err, math.Pi)
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name() != "pi" {
		t.Errorf("got span name %q, want pi", spans[0].Name())
	}
	if v, ok := spanAttr(spans[0], AttrResult); !ok || v.AsFloat64() != math.Pi {
		t.Errorf("result attribute: got %v, %v", v, ok)
	}
	if v, _ := spanAttr(spans[0], AttrStatus); v.AsString() != StatusOK {
		t.Errorf("status attribute: got %q, want %q", v.AsString(), StatusOK)
	}

	metrics := collect(t, reader)
	if total := counterTotal(t, metrics[MetricEvaluations]); total != 1 {
		t.Errorf("evaluations: got %d, want 1", total)
	}
	if _, ok := metrics[MetricErrors]; ok {
		t.Error("expected no error datapoints")
	}
	if _, ok := metrics[MetricDuration].Data.(metricdata.Histogram[float64]); !ok {
		t.Errorf("duration: unexpected data %T", metrics[MetricDuration].Data)
	}
}

func TestTrack_Error(t *testing.T) {
	sr := installRecorder(t)
	m, reader := newTestMetrics(t)

	_, err := Track(context.Background(), m, "root", func(context.Context) (float64, error) {
		return 0, errors.InvalidArgument("a, b", "values are not of opposite sign")
	})
	if !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}

	span := sr.Ended()[0]
	if span.Status().Code != codes.Error {
		t.Errorf("got span status %v, want Error", span.Status().Code)
	}
	if v, _ := spanAttr(span, AttrErrorCode); v.AsString() != string(errors.ErrCodeInvalidArgument) {
		t.Errorf("error code attribute: got %q", v.AsString())
	}
	if len(span.Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}

	metrics := collect(t, reader)
	if total := counterTotal(t, metrics[MetricErrors]); total != 1 {
		t.Errorf("errors: got %d, want 1", total)
	}
}

func TestTrack_NilMetrics(t *testing.T) {
	got, err := Track(context.Background(), nil, "op", func(context.Context) (float64, error) { return 1, nil })
	if err != nil || got != 1 {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestInstrumentStrategy(t *testing.T) {
	sr := installRecorder(t)
	m, reader := newTestMetrics(t)

	s := InstrumentStrategy(accumulate.Imperative, m)
	if s.Name() != accumulate.NameImperative {
		t.Errorf("got name %q, want %q", s.Name(), accumulate.NameImperative)
	}

	add := func(a, b float64) float64 { return a + b }
	id := func(x float64) float64 { return x }
	inc := func(x float64) float64 { return x + 1 }

	if got := accumulate.Accumulate(s, add, id, 1, inc, 10, 0); got != 55 {
		t.Errorf("got %v, want 55", got)
	}
	got, err := accumulate.AccumulateContext(context.Background(), s, add, id, 1, inc, 100, 0)
	if err != nil || got != 5050 {
		t.Errorf("got %v, %v; want 5050", got, err)
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if v, _ := spanAttr(spans[0], AttrStrategy); v.AsString() != accumulate.NameImperative {
		t.Errorf("strategy attribute: got %q", v.AsString())
	}
	if total := counterTotal(t, collect(t, reader)[MetricEvaluations]); total != 2 {
		t.Errorf("evaluations: got %d, want 2", total)
	}
}

func TestInstrumentStrategy_Cancelled(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := InstrumentStrategy(accumulate.Parallel{}, m)
	_, err := accumulate.AccumulateContext(ctx, s,
		func(a, b float64) float64 { return a + b },
		func(x float64) float64 { return x }, 1,
		func(x float64) float64 { return x + 1 }, 1000, 0)
	if !errors.IsCode(err, errors.ErrCodeCancelled) {
		t.Fatalf("expected CANCELLED, got %v", err)
	}
	if total := counterTotal(t, collect(t, reader)[MetricErrors]); total != 1 {
		t.Errorf("errors: got %d, want 1", total)
	}
}

func TestSetSpanAttribute_NoSpan(t *testing.T) {
	SetSpanAttribute(context.Background(), "key", "value")
	SetSpanError(context.Background(), errors.New(errors.ErrCodeInternal, "boom"))
}

func TestSetSpanAttribute_Types(t *testing.T) {
	sr := installRecorder(t)
	ctx, span := StartSpan(context.Background(), "attrs")
	SetSpanAttribute(ctx, "s", "v")
	SetSpanAttribute(ctx, "i", 42)
	SetSpanAttribute(ctx, "i64", int64(7))
	SetSpanAttribute(ctx, "f", 1.5)
	SetSpanAttribute(ctx, "b", true)
	SetSpanAttribute(ctx, "ss", []string{"a", "b"})
	SetSpanAttribute(ctx, "ignored", struct{}{})
	span.End()

	ended := sr.Ended()[0]
	if n := len(ended.Attributes()); n != 6 {
		t.Errorf("got %d attributes, want 6", n)
	}
}
