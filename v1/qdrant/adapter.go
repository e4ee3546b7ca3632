package qdrant

import (
	"context"
	"errors"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// Adapter implements vectordb.Service on top of a QdrantClient.
type Adapter struct {
	client    *qdrant.Client
	batchSize int
	log       logger.Logger
}

var _ vectordb.Service = (*Adapter)(nil)

// NewAdapter wraps a connected client.
func NewAdapter(c *QdrantClient) *Adapter {
	return &Adapter{
		client:    c.api,
		batchSize: c.cfg.batchSize(),
		log:       c.log,
	}
}

// EnsureCollection creates a cosine collection of the given vector size when it is missing.
func (a *Adapter) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if vectorSize == 0 {
		return fmt.Errorf("vector size must be greater than 0")
	}

	exists, err := a.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		a.log.Debug("[Qdrant] Collection already exists", nil, map[string]interface{}{"collection": name})
		return nil
	}

	err = a.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", name, err)
	}

	a.log.Info("[Qdrant] Created collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})
	return nil
}

// DeleteCollection drops a collection if it exists.
func (a *Adapter) DeleteCollection(ctx context.Context, name string) error {
	exists, err := a.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := a.client.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("[Qdrant] failed to delete collection '%s': %w", name, err)
	}
	a.log.Info("[Qdrant] Deleted collection", nil, map[string]interface{}{"collection": name})
	return nil
}

// CollectionExists reports whether the named collection exists.
func (a *Adapter) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("collection name cannot be empty")
	}
	exists, err := a.client.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("[Qdrant] failed to check collection '%s': %w", name, err)
	}
	return exists, nil
}

// Insert upserts inputs in batches of the configured size, waiting for each
// batch to be persisted.
func (a *Adapter) Insert(ctx context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}
	if collectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	for start := 0; start < len(inputs); start += a.batchSize {
		end := min(start+a.batchSize, len(inputs))

		points, err := toPoints(inputs[start:end])
		if err != nil {
			return fmt.Errorf("[Qdrant] invalid batch [%d:%d]: %w", start, end, err)
		}

		wait := true
		_, err = a.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: collectionName,
			Points:         points,
			Wait:           &wait,
		})
		if err != nil {
			return fmt.Errorf("[Qdrant] batch upsert failed at [%d:%d]: %w", start, end, err)
		}

		a.log.Debug("[Qdrant] Inserted batch", nil, map[string]interface{}{
			"collection": collectionName,
			"from":       start,
			"to":         end,
		})
	}

	return nil
}

// Search runs each request in order. Per-request failures are joined into the
// returned error; the result slot of a failed request is left nil.
func (a *Adapter) Search(ctx context.Context, requests ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("at least one search request is required")
	}

	results := make([][]vectordb.SearchResult, len(requests))
	var errs []error

	for i, req := range requests {
		res, err := a.search(ctx, req)
		if err != nil {
			errs = append(errs, fmt.Errorf("request [%d]: %w", i, err))
			continue
		}
		results[i] = res
	}

	return results, errors.Join(errs...)
}

func (a *Adapter) search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.CollectionName, req.Vector, req.TopK); err != nil {
		return nil, err
	}

	limit := uint64(req.TopK)
	resp, err := a.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: req.CollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		ScoreThreshold: req.ScoreThreshold,
		Filter:         convertFilterSet(req.Filters),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] search failed: %w", err)
	}

	results, err := parseSearchResults(resp)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].CollectionName = req.CollectionName
	}
	return results, nil
}

// GetCollection retrieves metadata about a collection.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := a.client.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)

	return &vectordb.Collection{
		Name:        name,
		Status:      info.GetStatus().String(),
		VectorSize:  size,
		Distance:    distance,
		VectorCount: derefUint64(info.IndexedVectorsCount),
		PointCount:  derefUint64(info.PointsCount),
	}, nil
}

// Health checks that Qdrant answers.
func (a *Adapter) Health(ctx context.Context) error {
	if _, err := a.client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}
	return nil
}

func validateSearchInput(collectionName string, vector []float32, topK int) error {
	if collectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("topK must be greater than 0")
	}
	return nil
}
