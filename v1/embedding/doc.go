// Package embedding turns card and query text into dense vectors.
//
// Two providers are supported, selected by Config.Provider:
//
//   - "ollama": POST {endpoint}/api/embed, defaulting to a local Ollama serving
//     nomic-embed-text (768 dimensions).
//   - "openai": POST {endpoint}/embeddings on any OpenAI-compatible API, with
//     the service token sent as a bearer token.
//
// Application code depends on the [Embedder] interface:
//
//	client, err := embedding.NewClient(embedding.DefaultConfig(), log)
//	if err != nil {
//	    return err
//	}
//	vectors, err := client.Embed(ctx, "flying creature with lifelink")
//
// Texts are sent in batches of Config.BatchSize. Network errors, 429 and 5xx
// responses are retried with exponential backoff up to Config.MaxRetries
// attempts. A response with the wrong number of vectors, or vectors of a size
// other than Config.Dimensions, is an error. Outgoing requests are traced.
package embedding
