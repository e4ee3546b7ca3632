package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/cards"
	"github.com/cardforge/mtgsearch/v1/embedding"
	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/tracer"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// ErrEmptyQuery is returned when the query text is blank.
var ErrEmptyQuery = errors.New("query is required")

// Query is a natural-language card search.
type Query struct {
	Text string `json:"query"`

	// Limit is the maximum number of cards returned, capped at MaxLimit.
	Limit int `json:"limit,omitempty"`

	// MaxDistance drops cards farther than this cosine distance from the query.
	MaxDistance *float32 `json:"max_distance,omitempty"`

	Rarity string   `json:"rarity,omitempty"`
	Colors []string `json:"colors,omitempty"`

	// Format keeps only cards legal in the named format, e.g. "modern".
	Format string `json:"format,omitempty"`
}

// Result is a matching card and its cosine distance to the query.
type Result struct {
	Card     *cards.Card `json:"card"`
	Distance float32     `json:"distance"`
}

// Params are the Service's dependencies.
type Params struct {
	fx.In

	Config     Config
	Collection string `name:"collection"`
	DB         vectordb.Service
	Embedder   embedding.Embedder
	Metrics    metrics.MetricsCollector
	Tracer     *tracer.Tracer
	Logger     logger.Logger
}

// Service answers semantic card queries against the card collection.
type Service struct {
	cfg        Config
	collection string
	db         vectordb.Service
	embedder   embedding.Embedder
	metrics    metrics.MetricsCollector
	tracer     *tracer.Tracer
	log        logger.Logger

	// nil when caching is disabled
	vectors *lru.Cache[string, []float32]
}

// NewService builds a Service.
func NewService(p Params) (*Service, error) {
	s := &Service{
		cfg:        p.Config,
		collection: p.Collection,
		db:         p.DB,
		embedder:   p.Embedder,
		metrics:    p.Metrics,
		tracer:     p.Tracer,
		log:        p.Logger,
	}

	size := p.Config.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	if size > 0 {
		cache, err := lru.New[string, []float32](size)
		if err != nil {
			return nil, fmt.Errorf("search: query cache: %w", err)
		}
		s.vectors = cache
	}
	return s, nil
}

// Search embeds the query text and returns the closest cards, nearest first.
func (s *Service) Search(ctx context.Context, q Query) ([]Result, error) {
	start := time.Now()

	text := strings.TrimSpace(q.Text)
	if text == "" {
		s.metrics.ObserveSearch(start, "rejected", 0)
		return nil, ErrEmptyQuery
	}

	ctx, span := s.tracer.StartSpan(ctx, "search.Search")
	defer span.End()

	limit := s.cfg.limit(q.Limit)
	maxDistance := s.cfg.maxDistance(q.MaxDistance)
	s.tracer.SetAttributes(span, map[string]interface{}{
		"search.collection":   s.collection,
		"search.limit":        limit,
		"search.max_distance": maxDistance,
	})

	results, err := s.search(ctx, text, limit, maxDistance, q)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.metrics.ObserveSearch(start, "error", 0)
		s.log.ErrorWithContext(ctx, "Search failed", err, map[string]interface{}{
			"query": text,
		})
		return nil, err
	}

	s.tracer.SetAttributes(span, map[string]interface{}{"search.hits": len(results)})
	s.metrics.ObserveSearch(start, "ok", len(results))
	s.log.DebugWithContext(ctx, "Search completed", nil, map[string]interface{}{
		"query":    text,
		"hits":     len(results),
		"duration": time.Since(start).String(),
	})
	return results, nil
}

func (s *Service) search(ctx context.Context, text string, limit int, maxDistance float32, q Query) ([]Result, error) {
	vector, err := s.embed(ctx, text)
	if err != nil {
		return nil, err
	}

	threshold := 1 - maxDistance
	batches, err := s.db.Search(ctx, vectordb.SearchRequest{
		CollectionName: s.collection,
		Vector:         vector,
		TopK:           limit,
		ScoreThreshold: &threshold,
		Filters:        buildFilters(q),
	})
	if err != nil {
		return nil, fmt.Errorf("search: query %s: %w", s.collection, err)
	}
	if len(batches) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, 0, len(batches[0]))
	for _, hit := range batches[0] {
		card, err := cards.FromPayload(hit.Payload)
		if err != nil {
			return nil, fmt.Errorf("search: decode point %s: %w", hit.ID, err)
		}
		results = append(results, Result{Card: card, Distance: hit.Distance()})
	}
	return results, nil
}

func (s *Service) embed(ctx context.Context, text string) ([]float32, error) {
	if s.vectors != nil {
		if v, ok := s.vectors.Get(text); ok {
			return v, nil
		}
	}

	vectors, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search: embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("search: embed query: got %d vectors", len(vectors))
	}

	if s.vectors != nil {
		s.vectors.Add(text, vectors[0])
	}
	return vectors[0], nil
}

// buildFilters translates the optional facets of q into payload filters. All
// listed colours must be present on the card.
func buildFilters(q Query) *vectordb.FilterSet {
	var conditions []vectordb.FilterCondition

	if rarity := strings.TrimSpace(q.Rarity); rarity != "" {
		conditions = append(conditions, vectordb.NewMatch("rarity", strings.ToLower(rarity)))
	}
	for _, colour := range q.Colors {
		if colour = strings.TrimSpace(colour); colour != "" {
			conditions = append(conditions, vectordb.NewMatch("colors", strings.ToUpper(colour)))
		}
	}
	if format := strings.TrimSpace(q.Format); format != "" {
		conditions = append(conditions, vectordb.NewMatch("legal_formats", strings.ToLower(format)))
	}

	if len(conditions) == 0 {
		return nil
	}
	return vectordb.NewFilterSet(vectordb.Must(conditions...))
}
