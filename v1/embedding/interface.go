package embedding

import "context"

//go:generate mockgen -source=interface.go -destination=mock_embedder.go -package=embedding

// Embedder turns texts into dense vectors, one per text, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts ...string) ([][]float32, error)

	// Dimensions is the size of every returned vector.
	Dimensions() int
}
