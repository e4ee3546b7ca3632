// Package tracer wraps the OpenTelemetry SDK for the search service.
//
// NewClient builds a TracerProvider (with an OTLP/HTTP exporter when enabled),
// installs it globally and returns a Tracer with helpers for starting spans,
// recording errors and moving trace context across process boundaries:
//
//	ctx, span := tr.StartSpan(ctx, "search")
//	defer span.End()
//	tr.SetAttributes(span, map[string]interface{}{"query.length": len(q)})
//	if err != nil {
//		tr.RecordErrorOnSpan(span, err)
//	}
//
// Configuration:
//
//	OTEL_EXPORT_ENABLED=true
//	OTEL_EXPORTER_OTLP_ENDPOINT=http://otel-collector:4318
//	TRACER_SERVICE_NAME=mtgsearch
//	APP_ENV=production
package tracer
