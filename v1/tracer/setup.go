package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/cardforge/mtgsearch/v1/logger"
)

// Tracer provides a simplified API for distributed tracing with OpenTelemetry.
// It is safe to share across goroutines.
type Tracer struct {
	tracer *trace.TracerProvider
	logger logger.Logger
}

// NewClient creates the tracer provider, installs it as the global provider and
// configures W3C trace-context propagation.
//
// With cfg.EnableExport an OTLP/HTTP exporter is attached through a batcher. If
// the exporter cannot be created the error is logged as fatal.
//
// Parameters:
//   - cfg: Service name, environment and exporter settings
//   - log: Logger used to report exporter failures
//
// Returns:
//   - *Tracer: A tracer ready for StartSpan; call Shutdown on exit to flush spans
//
// Example:
//
//	tr := tracer.NewClient(tracer.Config{ServiceName: "mtgsearch", AppEnv: "local"}, log)
//	ctx, span := tr.StartSpan(ctx, "search")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			log.Fatal("cannot initiate tracer", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: log}
}

// NewWithProvider wraps an existing provider without touching the globals.
func NewWithProvider(tp *trace.TracerProvider, log logger.Logger) *Tracer {
	return &Tracer{tracer: tp, logger: log}
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
