// Package logger provides structured logging for the search service and its tools.
//
// It wraps Uber's zap with a small API that takes a message, an optional error and
// any number of field maps:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "mtgsearch",
//	})
//
//	log.Info("Processing chunk", nil, map[string]interface{}{
//		"rows": 200,
//	})
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" pattern:
//   - Logger interface: what the other packages depend on
//   - LoggerClient struct: the zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides both *LoggerClient and Logger to the Fx container
//
// # FX Module Integration
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: "info", ServiceName: "mtgsearch"}),
//		logger.FXModule,
//		logger.WithFxLogger, // Fx's own events go through zap as well
//	)
//
// # Context-Aware Logging
//
// With EnableTracing set, the *WithContext methods add the OpenTelemetry trace_id
// and span_id of the span stored in the context, which correlates log lines with
// the spans created by the tracer package:
//
//	ctx, span := tr.StartSpan(ctx, "search")
//	defer span.End()
//	log.InfoWithContext(ctx, "Search finished", nil, map[string]interface{}{"hits": 5})
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_SERVICE_NAME=mtgsearch   # value of the "service" field
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id in *WithContext methods
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
