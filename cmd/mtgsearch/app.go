package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/config"
	"github.com/cardforge/mtgsearch/v1/embedding"
	"github.com/cardforge/mtgsearch/v1/ingest"
	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/minio"
	"github.com/cardforge/mtgsearch/v1/search"
	"github.com/cardforge/mtgsearch/v1/tracer"
	"github.com/cardforge/mtgsearch/v1/vectorstore"
)

// coreModules are shared by every command: configuration, observability,
// the embedding client and the vector store.
func coreModules(cfg *config.Config) fx.Option {
	return fx.Options(
		config.Module(cfg),
		logger.FXModule,
		logger.WithFxLogger,
		tracer.FXModule,
		metrics.FXModule,
		embedding.FXModule,
		vectorstore.FXModule,
	)
}

// objectStorage wires the MinIO client as the loader's object opener when
// object storage is configured.
func objectStorage(cfg *config.Config) fx.Option {
	if !cfg.Minio.Enabled() {
		return fx.Options()
	}
	return fx.Options(
		minio.FXModule,
		fx.Provide(func(c *minio.MinioClient) ingest.ObjectOpener { return c }),
	)
}

func ingestApp(cfg *config.Config, extra ...fx.Option) *fx.App {
	return fx.New(
		coreModules(cfg),
		objectStorage(cfg),
		ingest.FXModule,
		fx.Options(extra...),
	)
}

func searchApp(cfg *config.Config, extra ...fx.Option) *fx.App {
	return fx.New(
		coreModules(cfg),
		search.FXModule,
		fx.Options(extra...),
	)
}

// runWithin starts app, calls fn and stops app again.
func runWithin(ctx context.Context, app *fx.App, fn func(context.Context) error) (err error) {
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = fmt.Errorf("stop: %w", stopErr)
		}
	}()

	return fn(ctx)
}
