package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"

	"github.com/cardforge/mtgsearch/v1/embedding"
	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/tracer"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

func newTestService(t *testing.T, cfg Config) (*Service, *vectordb.MockService, *embedding.MockEmbedder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := vectordb.NewMockService(ctrl)
	embedder := embedding.NewMockEmbedder(ctrl)

	svc, err := NewService(Params{
		Config:     cfg,
		Collection: "Cards",
		DB:         db,
		Embedder:   embedder,
		Metrics:    metrics.NewMetrics(metrics.Config{ServiceName: "test"}),
		Tracer:     tracer.NewWithProvider(sdktrace.NewTracerProvider(), logger.NewNop()),
		Logger:     logger.NewNop(),
	})
	require.NoError(t, err)
	return svc, db, embedder
}

func hit(id int64, name string, score float32) vectordb.SearchResult {
	return vectordb.SearchResult{
		ID:    name,
		Score: score,
		Payload: map[string]any{
			"multiverse_id": id,
			"name":          name,
			"colors":        []any{"R"},
			"number":        nil,
		},
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc, _, _ := newTestService(t, DefaultConfig())

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), Query{Text: text})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
}

func TestSearch_Defaults(t *testing.T) {
	svc, db, embedder := newTestService(t, DefaultConfig())

	embedder.EXPECT().Embed(gomock.Any(), "red dragon").Return([][]float32{{0.1, 0.2, 0.3}}, nil)
	db.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
			require.Len(t, reqs, 1)
			req := reqs[0]
			assert.Equal(t, "Cards", req.CollectionName)
			assert.Equal(t, []float32{0.1, 0.2, 0.3}, req.Vector)
			assert.Equal(t, DefaultLimit, req.TopK)
			require.NotNil(t, req.ScoreThreshold)
			assert.InDelta(t, 0.3, *req.ScoreThreshold, 1e-6)
			assert.Nil(t, req.Filters)
			return [][]vectordb.SearchResult{{
				hit(1, "Shivan Dragon", 0.9),
				hit(2, "Dragon Whelp", 0.75),
			}}, nil
		})

	results, err := svc.Search(context.Background(), Query{Text: "  red dragon "})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Shivan Dragon", results[0].Card.Name)
	assert.Equal(t, []string{"R"}, results[0].Card.Colors)
	assert.Nil(t, results[0].Card.Number)
	assert.InDelta(t, 0.1, results[0].Distance, 1e-6)
	assert.InDelta(t, 0.25, results[1].Distance, 1e-6)
}

func TestSearch_LimitAndDistance(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		query         Query
		wantTopK      int
		wantThreshold float32
	}{
		{name: "explicit", cfg: DefaultConfig(), query: Query{Limit: 3, MaxDistance: ptr(float32(0.5))}, wantTopK: 3, wantThreshold: 0.5},
		{name: "capped", cfg: DefaultConfig(), query: Query{Limit: 500}, wantTopK: MaxLimit, wantThreshold: 0.3},
		{name: "zero distance", cfg: DefaultConfig(), query: Query{MaxDistance: ptr(float32(0))}, wantTopK: DefaultLimit, wantThreshold: 1},
		{name: "configured defaults", cfg: Config{DefaultLimit: 10, DefaultMaxDistance: 0.4}, query: Query{}, wantTopK: 10, wantThreshold: 0.6},
		{name: "empty config", cfg: Config{}, query: Query{}, wantTopK: DefaultLimit, wantThreshold: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db, embedder := newTestService(t, tt.cfg)
			embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil)
			db.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, reqs ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
					assert.Equal(t, tt.wantTopK, reqs[0].TopK)
					assert.InDelta(t, tt.wantThreshold, *reqs[0].ScoreThreshold, 1e-6)
					return nil, nil
				})

			tt.query.Text = "counterspell"
			results, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}

func TestSearch_Filters(t *testing.T) {
	svc, db, embedder := newTestService(t, DefaultConfig())
	embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil)

	var got *vectordb.FilterSet
	db.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reqs ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
			got = reqs[0].Filters
			return [][]vectordb.SearchResult{{}}, nil
		})

	_, err := svc.Search(context.Background(), Query{
		Text:   "burn",
		Rarity: "Rare",
		Colors: []string{"r", " ", "G"},
		Format: "Modern",
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	require.NotNil(t, got.Must)
	assert.Nil(t, got.Should)
	assert.Equal(t, []vectordb.FilterCondition{
		vectordb.NewMatch("rarity", "rare"),
		vectordb.NewMatch("colors", "R"),
		vectordb.NewMatch("colors", "G"),
		vectordb.NewMatch("legal_formats", "modern"),
	}, got.Must.Conditions)
}

func TestSearch_CachesQueryEmbeddings(t *testing.T) {
	svc, db, embedder := newTestService(t, DefaultConfig())

	embedder.EXPECT().Embed(gomock.Any(), "goblin").Return([][]float32{{1, 2}}, nil).Times(1)
	db.EXPECT().Search(gomock.Any(), gomock.Any()).Return([][]vectordb.SearchResult{{}}, nil).Times(2)

	for range 2 {
		_, err := svc.Search(context.Background(), Query{Text: "goblin"})
		require.NoError(t, err)
	}
}

func TestSearch_CacheDisabled(t *testing.T) {
	svc, db, embedder := newTestService(t, Config{CacheSize: -1})

	embedder.EXPECT().Embed(gomock.Any(), "goblin").Return([][]float32{{1, 2}}, nil).Times(2)
	db.EXPECT().Search(gomock.Any(), gomock.Any()).Return([][]vectordb.SearchResult{{}}, nil).Times(2)

	for range 2 {
		_, err := svc.Search(context.Background(), Query{Text: "goblin"})
		require.NoError(t, err)
	}
}

func TestSearch_Errors(t *testing.T) {
	t.Run("embedding", func(t *testing.T) {
		svc, _, embedder := newTestService(t, DefaultConfig())
		embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, errors.New("model not found"))

		_, err := svc.Search(context.Background(), Query{Text: "angel"})
		assert.ErrorContains(t, err, "model not found")
	})

	t.Run("vector count", func(t *testing.T) {
		svc, _, embedder := newTestService(t, DefaultConfig())
		embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{}, nil)

		_, err := svc.Search(context.Background(), Query{Text: "angel"})
		assert.ErrorContains(t, err, "got 0 vectors")
	})

	t.Run("vector store", func(t *testing.T) {
		svc, db, embedder := newTestService(t, DefaultConfig())
		embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil)
		db.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("collection Cards not found"))

		_, err := svc.Search(context.Background(), Query{Text: "angel"})
		assert.ErrorContains(t, err, "collection Cards not found")
	})

	t.Run("bad payload", func(t *testing.T) {
		svc, db, embedder := newTestService(t, DefaultConfig())
		embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil)
		db.EXPECT().Search(gomock.Any(), gomock.Any()).Return([][]vectordb.SearchResult{{
			{ID: "x", Score: 1, Payload: map[string]any{"name": "No Id"}},
		}}, nil)

		_, err := svc.Search(context.Background(), Query{Text: "angel"})
		assert.ErrorContains(t, err, "decode point x")
	})
}

func ptr[T any](v T) *T { return &v }
