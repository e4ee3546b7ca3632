package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cardforge/mtgsearch/v1/logger"
)

// provider is one backend's request/response shape.
type provider interface {
	name() string
	create(ctx context.Context, texts []string) ([][]float32, error)
}

// Client is the public entrypoint for computing embeddings.
//
// It hides the provider details (endpoints, payload shapes, retries) from the
// application layer and enforces the configured vector size.
type Client struct {
	provider   provider
	batchSize  int
	dimensions int
	log        logger.Logger
}

var _ Embedder = (*Client)(nil)

// NewClient validates cfg and constructs the configured provider.
//
// Requests go through an OpenTelemetry-instrumented transport and are retried
// with exponential backoff on network errors, 429 and 5xx responses.
//
// Parameters:
//   - cfg: Provider, endpoint, model, dimensions and batching settings
//   - log: Logger for retry and batch diagnostics
//
// Returns:
//   - *Client: A client implementing Embedder
//   - error: When cfg is nil or fails validation
//
// Example:
//
//	client, err := embedding.NewClient(&embedding.Config{
//	    Provider:   embedding.ProviderOllama,
//	    Endpoint:   "http://localhost:11434",
//	    Model:      "nomic-embed-text",
//	    Dimensions: 768,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	vectors, err := client.Embed(ctx, "flying dragon that deals damage")
func NewClient(cfg *Config, log logger.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("embedding: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	h := &httpDoer{
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.timeoutSeconds()) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		serviceToken: cfg.ServiceToken,
		maxRetries:   cfg.maxRetries(),
	}
	base := strings.TrimRight(cfg.Endpoint, "/")

	var p provider
	switch strings.ToLower(cfg.Provider) {
	case ProviderOllama:
		p = &ollamaProvider{baseURL: base, model: cfg.Model, http: h}
	case ProviderOpenAI:
		p = &inferenceProvider{baseURL: base, model: cfg.Model, http: h}
	}

	log.Info("Embedding client configured", nil, map[string]interface{}{
		"provider":   p.name(),
		"endpoint":   base,
		"model":      cfg.Model,
		"dimensions": cfg.Dimensions,
	})

	return &Client{
		provider:   p,
		batchSize:  cfg.batchSize(),
		dimensions: cfg.Dimensions,
		log:        log,
	}, nil
}

// Embed returns one vector per text. Texts are sent in batches of the
// configured size; a response with the wrong count or vector size is an error.
func (c *Client) Embed(ctx context.Context, texts ...string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += c.batchSize {
		end := min(start+c.batchSize, len(texts))

		vectors, err := c.provider.create(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embedding: %s request failed: %w", c.provider.name(), err)
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("embedding: %s returned %d embeddings for %d texts", c.provider.name(), len(vectors), end-start)
		}
		for i, v := range vectors {
			if len(v) != c.dimensions {
				return nil, fmt.Errorf("embedding: vector %d has %d dimensions, want %d", start+i, len(v), c.dimensions)
			}
		}
		out = append(out, vectors...)
	}

	return out, nil
}

// Dimensions returns the configured vector size.
func (c *Client) Dimensions() int {
	return c.dimensions
}

// Close releases idle HTTP connections.
func (c *Client) Close() error {
	type idleCloser interface{ closeIdle() }
	if ic, ok := c.provider.(idleCloser); ok {
		ic.closeIdle()
	}
	return nil
}
