package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/search"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// FXModule provides *Server and serves it for the lifetime of the application.
//
// Dependencies required by this module:
// - a server.Config
// - *search.Service, vectordb.Service, metrics.MetricsCollector, *tracer.Tracer, logger.Logger
var FXModule = fx.Module("server",
	fx.Provide(
		NewServer,
		func(s *search.Service) Searcher { return s },
		func(db vectordb.Service) HealthChecker { return db },
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle binds the listen address on start, so a busy port
// fails startup, then serves in the background until stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", s.http.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", nil, map[string]interface{}{
				"address": ln.Addr().String(),
			})

			go func() {
				if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server", nil, nil)
			return s.http.Shutdown(ctx)
		},
	})
}
