package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Tracer and flushes it on shutdown.
// A tracer.Config and a logger.Logger must be available in the container.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the provider down when the application stops so
// that batched spans are exported.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			tracer.logger.Info("shutting down tracer", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
