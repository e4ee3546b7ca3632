package search

import "go.uber.org/fx"

// FXModule provides *Service.
//
// Dependencies required by this module:
// - a search.Config and a string named "collection"
// - vectordb.Service, embedding.Embedder, metrics.MetricsCollector, *tracer.Tracer, logger.Logger
var FXModule = fx.Module("search",
	fx.Provide(NewService),
)
