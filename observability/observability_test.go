package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordRequestStart(ctx)
	metrics.RecordRequestEnd(ctx, "API", "GET", 200, 100*time.Millisecond)
	metrics.RecordError(ctx, "TIMEOUT", "API")
}

func TestOperation_Success(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := NewMetrics(Meter(mp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, op := StartOperation(context.Background(), Tracer(tp), metrics, "Cloud", "GET", "/api/storage/stat")
	if !SpanFromContext(ctx).SpanContext().IsValid() {
		t.Error("expected a span in the returned context")
	}
	op.End(ctx, 200, "", nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != SpanSend {
		t.Errorf("expected span %s, got %s", SpanSend, span.Name())
	}
	if span.Status().Code != codes.Ok {
		t.Errorf("expected ok status, got %v", span.Status())
	}
	assertAttr(t, span.Attributes(), AttrEndpointType, "Cloud")
	assertAttr(t, span.Attributes(), AttrURLPath, "/api/storage/stat")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := counterValue(rm, MetricRequestTotal); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
	if got := counterValue(rm, MetricErrorTotal); got != 0 {
		t.Errorf("expected no errors, got %d", got)
	}
}

func TestOperation_Error(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	metrics, _ := NewMetrics(Meter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))))

	ctx, op := StartOperation(context.Background(), Tracer(tp), metrics, "API", "POST", "/api/jobs")
	op.End(ctx, 503, "REQUEST_FAILED", fmt.Errorf("unavailable"))

	span := recorder.Ended()[0]
	if span.Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", span.Status())
	}
	assertAttr(t, span.Attributes(), AttrErrorCode, "REQUEST_FAILED")
	if len(span.Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}

	var rm metricdata.ResourceMetrics
	_ = reader.Collect(context.Background(), &rm)
	if got := counterValue(rm, MetricErrorTotal); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
}

func TestOperation_NilMetrics(t *testing.T) {
	ctx, op := StartOperation(context.Background(), nil, nil, "API", "GET", "/")
	op.End(ctx, 0, "TRANSPORT_ERROR", fmt.Errorf("refused"))
	if op.Duration() < 0 {
		t.Error("expected non-negative duration")
	}
}

func TestSetSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx, span := Tracer(tp).Start(context.Background(), "x")
	SetSpanError(ctx, fmt.Errorf("boom"))
	span.End()
	if len(recorder.Ended()[0].Events()) != 1 {
		t.Error("expected one error event")
	}
	// no span in context is a no-op
	SetSpanError(context.Background(), fmt.Errorf("boom"))
}

func TestNewResource(t *testing.T) {
	res, err := newResource("svc", "1.2.3", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if kv.Key == "service.name" && kv.Value.AsString() == "svc" {
			found = true
		}
	}
	if !found {
		t.Error("expected service.name attribute")
	}
}

func TestInitTracer(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")
	cfg.SampleRate = 0.5
	tp, err := InitTracer(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	mp, err := InitMeter(context.Background(), DefaultMeterConfig("test-service"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = mp.Shutdown(ctx)
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
	}
	for _, tt := range tests {
		if got := samplerFor(tt.rate).Description(); got != tt.want {
			t.Errorf("rate %v: expected %s, got %s", tt.rate, tt.want, got)
		}
	}
}

func assertAttr(t *testing.T, attrs []attribute.KeyValue, key, want string) {
	t.Helper()
	for _, kv := range attrs {
		if string(kv.Key) == key {
			if kv.Value.AsString() != want {
				t.Errorf("expected %s=%s, got %s", key, want, kv.Value.AsString())
			}
			return
		}
	}
	t.Errorf("attribute %s not found", key)
}

func counterValue(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}
