package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/mtgsearch/v1/logger"
)

func vector(dim int, v float32) []float32 {
	out := make([]float32, dim)
	for i := range out {
		out[i] = v
	}
	return out
}

func newTestClient(t *testing.T, cfg *Config) *Client {
	t.Helper()
	c, err := NewClient(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Provider = "cohere"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Provider = ProviderOpenAI
	assert.ErrorContains(t, cfg.Validate(), "EMBEDDING_SERVICE_TOKEN")

	cfg = DefaultConfig()
	cfg.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "EMBEDDING_ENDPOINT")

	cfg = DefaultConfig()
	cfg.Dimensions = 0
	assert.Error(t, cfg.Validate())
}

func TestOllamaProvider(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/embed", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel, body.Model)

		embeddings := make([][]float32, len(body.Input))
		for i := range body.Input {
			embeddings[i] = vector(4, float32(len(body.Input[i])))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": embeddings})
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL + "/"
	cfg.Dimensions = 4
	cfg.BatchSize = 2
	c := newTestClient(t, cfg)

	out, err := c.Embed(context.Background(), "a", "bb", "ccc")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, vector(4, 1), out[0])
	assert.Equal(t, vector(4, 2), out[1])
	assert.Equal(t, vector(4, 3), out[2])
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 4, c.Dimensions())
}

func TestOpenAIProvider_OrdersByIndexAndSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": vector(2, 2)},
				{"index": 0, "embedding": vector(2, 1)},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, &Config{
		Provider:     ProviderOpenAI,
		Endpoint:     srv.URL + "/v1",
		Model:        "text-embedding-3-small",
		ServiceToken: "secret",
		Dimensions:   2,
	})

	out, err := c.Embed(context.Background(), "first", "second")
	require.NoError(t, err)
	assert.Equal(t, [][]float32{vector(2, 1), vector(2, 2)}, out)
}

func TestEmbed_Errors(t *testing.T) {
	t.Run("no texts", func(t *testing.T) {
		c := newTestClient(t, DefaultConfig())
		_, err := c.Embed(context.Background())
		assert.Error(t, err)
	})

	t.Run("client error is not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer srv.Close()

		cfg := DefaultConfig()
		cfg.Endpoint = srv.URL
		c := newTestClient(t, cfg)

		_, err := c.Embed(context.Background(), "x")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, StatusCode(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("server error is retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": [][]float32{vector(768, 0.5)}})
		}))
		defer srv.Close()

		cfg := DefaultConfig()
		cfg.Endpoint = srv.URL
		c := newTestClient(t, cfg)

		out, err := c.Embed(context.Background(), "x")
		require.NoError(t, err)
		assert.Len(t, out[0], 768)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("count mismatch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": [][]float32{vector(768, 1)}})
		}))
		defer srv.Close()

		cfg := DefaultConfig()
		cfg.Endpoint = srv.URL
		c := newTestClient(t, cfg)

		_, err := c.Embed(context.Background(), "x", "y")
		assert.ErrorContains(t, err, "returned 1 embeddings for 2 texts")
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": [][]float32{vector(3, 1)}})
		}))
		defer srv.Close()

		cfg := DefaultConfig()
		cfg.Endpoint = srv.URL
		c := newTestClient(t, cfg)

		_, err := c.Embed(context.Background(), "x")
		assert.ErrorContains(t, err, "has 3 dimensions, want 768")
	})
}
