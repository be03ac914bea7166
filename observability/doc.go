// Package observability provides OpenTelemetry tracing and metrics for the
// OpenAPI client.
//
// Every request sent by the client is wrapped in an Operation: a client
// span named openapi.send plus request count, duration and error metrics.
// Applications that export telemetry initialize the providers once:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing-sync"), log)
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing-sync"), log)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter(mp))
package observability
