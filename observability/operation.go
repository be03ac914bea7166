package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation tracks the span and metrics of one outbound request.
type Operation struct {
	EndpointType string
	Method       string
	Path         string
	StartTime    time.Time

	span    trace.Span
	metrics *Metrics
}

// StartOperation starts a client span and marks a request in flight.
// A nil tracer uses the global provider; nil metrics skip recording.
func StartOperation(ctx context.Context, tracer trace.Tracer, metrics *Metrics, endpointType, method, path string) (context.Context, *Operation) {
	if tracer == nil {
		tracer = Tracer(nil)
	}
	ctx, span := tracer.Start(ctx, SpanSend,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrEndpointType, endpointType),
			attribute.String(AttrMethod, method),
			attribute.String(AttrURLPath, path),
		),
	)
	if metrics != nil {
		metrics.RecordRequestStart(ctx)
	}
	return ctx, &Operation{
		EndpointType: endpointType,
		Method:       method,
		Path:         path,
		StartTime:    time.Now(),
		span:         span,
		metrics:      metrics,
	}
}

// SetAttributes adds attributes to the operation span.
func (op *Operation) SetAttributes(attrs ...attribute.KeyValue) {
	op.span.SetAttributes(attrs...)
}

// End finishes the span and records metrics. status is the HTTP status,
// or 0 when none arrived; errCode is empty on success.
func (op *Operation) End(ctx context.Context, status int, errCode string, err error) {
	duration := op.Duration()

	if status > 0 {
		op.span.SetAttributes(attribute.Int(AttrStatusCode, status))
	}
	op.span.SetAttributes(attribute.Int64(AttrDurationMs, duration.Milliseconds()))
	if err != nil {
		op.span.RecordError(err)
		op.span.SetAttributes(attribute.String(AttrErrorCode, errCode))
		op.span.SetStatus(codes.Error, errCode)
	} else {
		op.span.SetStatus(codes.Ok, "")
	}
	op.span.End()

	if op.metrics != nil {
		op.metrics.RecordRequestEnd(ctx, op.EndpointType, op.Method, status, duration)
		if err != nil {
			op.metrics.RecordError(ctx, errCode, op.EndpointType)
		}
	}
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}
