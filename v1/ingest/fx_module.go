package ingest

import "go.uber.org/fx"

// FXModule provides *Loader.
//
// Dependencies required by this module:
// - an ingest.Config and a string named "collection"
// - vectordb.Service, embedding.Embedder, metrics.MetricsCollector, *tracer.Tracer, logger.Logger
// - optionally an ObjectOpener for "s3://" sources
var FXModule = fx.Module("ingest",
	fx.Provide(NewLoader),
)
