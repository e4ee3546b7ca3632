package embedding

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the embedding client into Fx.
//
// It provides:
//   - *Client   (NewClient, needs *Config and logger.Logger)
//   - Embedder  (the same client)
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewClient,
		func(c *Client) Embedder { return c },
	),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// RegisterEmbeddingLifecycle releases the client's connections on shutdown.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
