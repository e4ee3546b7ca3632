package vectorstore

import (
	"context"

	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// FXModule connects to the configured backend and provides *Store,
// vectordb.Service and the card collection name as a string named "collection".
//
// Dependencies required by this module:
// - a vectorstore.Config
// - a logger.Logger
var FXModule = fx.Module("vectorstore",
	fx.Provide(
		NewStore,
		func(s *Store) vectordb.Service { return s },
		fx.Annotate(
			func(s *Store) string { return s.Collection() },
			fx.ResultTags(`name:"collection"`),
		),
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// RegisterStoreLifecycle closes the store connection on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Vector store ready", nil, map[string]interface{}{"collection": store.Collection()})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down vector store client", nil, nil)
			return store.Close()
		},
	})
}
