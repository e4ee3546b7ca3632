package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/search"
	"github.com/cardforge/mtgsearch/v1/tracer"
)

// Searcher runs card queries.
type Searcher interface {
	Search(ctx context.Context, q search.Query) ([]search.Result, error)
}

// HealthChecker reports whether the vector store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Params are the Server's dependencies.
type Params struct {
	fx.In

	Config   Config
	Searcher Searcher
	Health   HealthChecker
	Metrics  metrics.MetricsCollector
	Tracer   *tracer.Tracer
	Logger   logger.Logger
}

// Server is the web front end: the search page, the search API and a health probe.
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	search  Searcher
	health  HealthChecker
	metrics metrics.MetricsCollector
	tracer  *tracer.Tracer
	log     logger.Logger
}

// NewServer builds the router and the underlying http.Server. It does not listen.
func NewServer(p Params) *Server {
	if p.Config.Mode != "" {
		gin.SetMode(p.Config.Mode)
	}

	addr := p.Config.Address
	if addr == "" {
		addr = DefaultAddress
	}

	s := &Server{
		engine:  gin.New(),
		search:  p.Searcher,
		health:  p.Health,
		metrics: p.Metrics,
		tracer:  p.Tracer,
		log:     p.Logger,
	}

	s.engine.Use(gin.Recovery(), s.traceRequests(), s.observeRequests())
	s.registerRoutes()

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: p.Config.ReadHeaderTimeout,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.index)
	s.engine.POST("/search", s.searchCards)
	s.engine.GET("/health", s.healthCheck)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}
