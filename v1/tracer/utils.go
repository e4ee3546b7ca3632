package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cardforge/mtgsearch"

// StartSpan creates a new span with the given name and returns the derived
// context along with the span itself. This is the primary way the ingest,
// search and server packages trace their work.
//
// The created span becomes a child of any span already in ctx. If ctx carries
// no span, a new root span is created.
//
// Parameters:
//   - ctx: The parent context, which may contain a parent span
//   - name: A descriptive name for the operation, e.g. "search.Search"
//
// Returns:
//   - context.Context: A new context containing the created span
//   - traceSpan.Span: The created span, which must be ended by the caller
//
// Example:
//
//	func (l *Loader) storeChunk(ctx context.Context, batch []*cards.Card) error {
//	    ctx, span := l.tracer.StartSpan(ctx, "ingest.chunk")
//	    defer span.End()
//
//	    if err := l.db.Insert(ctx, l.collection, inputs); err != nil {
//	        l.tracer.RecordErrorOnSpan(span, err)
//	        return err
//	    }
//	    return nil
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	return t.tracer.Tracer(instrumentationName).Start(ctx, name)
}

// RecordErrorOnSpan records err on span and sets the span status to error, so
// failed embedding calls or vector searches stand out in the trace view.
//
// Parameters:
//   - span: The span on which to record the error
//   - err: The error to record
//
// Example:
//
//	ctx, span := tr.StartSpan(ctx, "search.Search")
//	defer span.End()
//
//	vectors, err := embedder.Embed(ctx, query)
//	if err != nil {
//	    tr.RecordErrorOnSpan(span, err)
//	    return nil, err
//	}
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attributes to span. Strings, ints, floats, bools and
// string slices keep their type; any other value is recorded with its fmt
// representation.
//
// Example:
//
//	tr.SetAttributes(span, map[string]interface{}{
//	    "search.limit":        5,
//	    "search.max_distance": 0.7,
//	    "search.colors":       []string{"R", "W"},
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case float32:
			attributes = append(attributes, attribute.Float64(k, float64(val)))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		case []string:
			attributes = append(attributes, attribute.StringSlice(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier serializes the trace context of ctx into a string map.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext restores a trace context serialized by GetCarrier, for
// example from incoming HTTP headers, and returns the derived context. Spans
// started from it join the caller's trace.
//
// Example:
//
//	carrier := map[string]string{"traceparent": c.GetHeader("traceparent")}
//	ctx := tr.SetCarrierOnContext(c.Request.Context(), carrier)
//	ctx, span := tr.StartSpan(ctx, "POST /search")
//	defer span.End()
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
