package embedding

import (
	"context"
	"fmt"
)

// ollamaProvider talks to Ollama's batch embedding endpoint.
type ollamaProvider struct {
	baseURL string
	model   string
	http    *httpDoer
}

func (p *ollamaProvider) name() string { return ProviderOllama }

func (p *ollamaProvider) closeIdle() { p.http.httpClient.CloseIdleConnections() }

func (p *ollamaProvider) create(ctx context.Context, texts []string) ([][]float32, error) {
	reqBody := map[string]any{
		"model": p.model,
		"input": texts,
	}

	var parsed struct {
		Embeddings [][]float32 `json:"embeddings"`
	}

	if err := p.http.postJSON(ctx, p.baseURL+"/api/embed", reqBody, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embeddings) == 0 {
		return nil, fmt.Errorf("ollama: embeddings empty")
	}
	return parsed.Embeddings, nil
}
