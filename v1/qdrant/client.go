package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/logger"
)

// QdrantParams defines dependencies needed to construct the Qdrant client.
type QdrantParams struct {
	fx.In

	Config *Config
	Logger logger.Logger
}

// QdrantClient wraps the official Qdrant Go client together with the settings
// it was created from.
type QdrantClient struct {
	api *qdrant.Client
	cfg *Config
	log logger.Logger
}

// NewQdrantClient connects to Qdrant and fails fast with a health check.
//
// Example:
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: cfg, Logger: log})
func NewQdrantClient(p QdrantParams) (*QdrantClient, error) {
	if p.Config == nil {
		return nil, fmt.Errorf("[Qdrant] config is required")
	}

	p.Logger.Info("[Qdrant] Connecting", nil, map[string]interface{}{
		"endpoint": p.Config.Endpoint,
		"port":     p.Config.port(),
		"tls":      p.Config.UseTLS,
	})

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   p.Config.Endpoint,
		Port:                   p.Config.port(),
		APIKey:                 p.Config.ApiKey,
		UseTLS:                 p.Config.UseTLS,
		SkipCompatibilityCheck: !p.Config.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	qc := &QdrantClient{
		api: client,
		cfg: p.Config,
		log: p.Logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.Config.timeout())
	defer cancel()

	if err := qc.HealthCheck(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	p.Logger.Info("[Qdrant] Client connected successfully", nil, nil)
	return qc, nil
}

// HealthCheck verifies the availability of the Qdrant service.
func (c *QdrantClient) HealthCheck(ctx context.Context) error {
	if c.api == nil {
		return fmt.Errorf("[Qdrant] client not initialized")
	}

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	c.log.Debug("[Qdrant] Health check passed", nil, map[string]interface{}{
		"title":    resp.GetTitle(),
		"version":  resp.GetVersion(),
		"endpoint": c.cfg.Endpoint,
	})
	return nil
}

// Client returns the underlying Qdrant SDK client.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Close releases the gRPC connection.
func (c *QdrantClient) Close() error {
	if c.api == nil {
		return nil
	}
	if err := c.api.Close(); err != nil {
		return fmt.Errorf("[Qdrant] failed to close client: %w", err)
	}
	return nil
}
