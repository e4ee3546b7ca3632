package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// FXModule provides a connected *QdrantClient, its *Adapter and the adapter
// as vectordb.Service, and closes the client on shutdown.
//
// Dependencies required by this module:
// - a *qdrant.Config
// - a logger.Logger
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		NewAdapter,
		func(a *Adapter) vectordb.Service { return a },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle closes the client when the application stops.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := client.Close(); err != nil {
				log.Error("[Qdrant] Failed to close client", err, nil)
				return err
			}
			log.Info("[Qdrant] Client connection closed", nil, nil)
			return nil
		},
	})
}
