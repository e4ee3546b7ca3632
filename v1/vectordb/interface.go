package vectordb

import "context"

//go:generate mockgen -source=interface.go -destination=mock_service.go -package=vectordb

// Service is the vector store contract used by ingestion and search.
// It hides the concrete database so the card pipeline can run against a
// local or a managed Qdrant, or a mock in tests.
//
// Example usage:
//
//	func NewSearchService(db vectordb.Service) *SearchService {
//	    return &SearchService{db: db}
//	}
type Service interface {
	// Search performs similarity search across one or more requests.
	// Returns one []SearchResult per request, in request order.
	//
	// Example:
	//   results, err := db.Search(ctx,
	//       SearchRequest{CollectionName: "Cards", Vector: vec, TopK: 5, ScoreThreshold: &min},
	//   )
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Insert upserts embeddings into a collection.
	// Uses batch processing internally; an existing ID is overwritten.
	Insert(ctx context.Context, collectionName string, inputs []EmbeddingInput) error

	// EnsureCollection creates a cosine collection if it doesn't exist.
	// Safe to call multiple times.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// DeleteCollection drops a collection. Deleting a missing collection is not an error.
	DeleteCollection(ctx context.Context, name string) error

	// CollectionExists reports whether a collection is present.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// Health checks that the database is reachable.
	Health(ctx context.Context) error
}
