// Package observability provides OpenTelemetry tracing and metrics for
// generator consumers.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("genc"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanRecipe)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("genc"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("genc"))
//	ids := observability.Instrument(ctx, generator.Incrementer[int64](1), metrics, "ids")
//
// Instrumented generators count pulls and failures and record pull latency.
// Core generator packages never depend on this package.
package observability
