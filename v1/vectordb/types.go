package vectordb

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"maxResults"`

	// ScoreThreshold drops results scoring below it. For cosine collections
	// a maximum distance d maps to a threshold of 1-d.
	ScoreThreshold *float32 `json:"scoreThreshold,omitempty"`

	// Filters is optional metadata filtering (AND/OR/NOT logic)
	Filters *FilterSet `json:"filters,omitempty"`
}

// SearchResult represents a single search result with its similarity score.
// The payload is converted to plain Go values.
type SearchResult struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`

	// CollectionName identifies which collection this result came from
	CollectionName string `json:"collectionName,omitempty"`
}

// Distance returns the cosine distance of the result, 1 - Score.
func (r SearchResult) Distance() float32 {
	return 1 - r.Score
}

// EmbeddingInput is the input for inserting vectors into a collection.
type EmbeddingInput struct {
	// ID is the unique identifier for this embedding; must be a UUID or an unsigned integer
	ID string `json:"id"`

	// Vector is the dense embedding representation
	Vector []float32 `json:"vector"`

	// Payload is optional metadata to store with the vector
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow")
	Status string `json:"status"`

	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid")
	Distance string `json:"distance"`

	VectorCount uint64 `json:"vectorCount"`
	PointCount  uint64 `json:"pointCount"`
}
