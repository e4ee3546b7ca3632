package embedding

import (
	"context"
	"fmt"
	"sort"
)

// inferenceProvider talks to an OpenAI-compatible embeddings API.
type inferenceProvider struct {
	baseURL string
	model   string
	http    *httpDoer
}

func (p *inferenceProvider) name() string { return ProviderOpenAI }

func (p *inferenceProvider) closeIdle() { p.http.httpClient.CloseIdleConnections() }

// create uses the /embeddings endpoint. Results are reordered by their index field.
func (p *inferenceProvider) create(ctx context.Context, texts []string) ([][]float32, error) {
	reqBody := map[string]any{
		"model": p.model,
		"input": texts,
	}

	var parsed struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	if err := p.http.postJSON(ctx, p.baseURL+"/embeddings", reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("inference: embeddings empty data")
	}

	sort.SliceStable(parsed.Data, func(i, j int) bool { return parsed.Data[i].Index < parsed.Data[j].Index })

	out := make([][]float32, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}
	return out, nil
}
