package qdrant

import (
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/mtgsearch/v1/vectordb"
)

func TestConvertFilterSet(t *testing.T) {
	t.Run("nil and empty", func(t *testing.T) {
		assert.Nil(t, convertFilterSet(nil))
		assert.Nil(t, convertFilterSet(vectordb.NewFilterSet()))
		assert.Nil(t, convertFilterSet(vectordb.NewFilterSet(vectordb.Must(vectordb.NewNumericRange("number", vectordb.NumericRange{})))))
	})

	t.Run("clauses", func(t *testing.T) {
		gte := 10.0
		f := convertFilterSet(vectordb.NewFilterSet(
			vectordb.Must(
				vectordb.NewMatch("rarity", "rare"),
				vectordb.NewMatch("legal_formats", "modern"),
				vectordb.NewNumericRange("number", vectordb.NumericRange{Gte: &gte}),
			),
			vectordb.Should(vectordb.NewMatchAny("colors", "R", "G")),
			vectordb.MustNot(vectordb.NewIsEmpty("image_url"), vectordb.NewMatchExcept("number", 1, 2)),
		))
		require.NotNil(t, f)
		require.Len(t, f.Must, 3)
		require.Len(t, f.Should, 1)
		require.Len(t, f.MustNot, 2)

		assert.Equal(t, "rarity", f.Must[0].GetField().GetKey())
		assert.Equal(t, "rare", f.Must[0].GetField().GetMatch().GetKeyword())
		assert.Equal(t, 10.0, f.Must[2].GetField().GetRange().GetGte())
		assert.Equal(t, []string{"R", "G"}, f.Should[0].GetField().GetMatch().GetKeywords().GetStrings())
		assert.Equal(t, "image_url", f.MustNot[0].GetIsEmpty().GetKey())
	})

	t.Run("unsupported match value is dropped", func(t *testing.T) {
		f := convertFilterSet(vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("power", 1.5+0i))))
		assert.Nil(t, f)
	})
}

func TestNewPointID(t *testing.T) {
	assert.Equal(t, uint64(42), newPointID("42").GetNum())
	id := "0f4a9a7e-6b0c-5d1e-8a57-3f3f0e2a1b4c"
	assert.Equal(t, id, newPointID(id).GetUuid())

	back, err := extractPointID(newPointID("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", back)

	_, err = extractPointID(nil)
	assert.Error(t, err)
}

func TestToPoints(t *testing.T) {
	points, err := toPoints([]vectordb.EmbeddingInput{{
		ID:     "0f4a9a7e-6b0c-5d1e-8a57-3f3f0e2a1b4c",
		Vector: []float32{0.1, 0.2},
		Payload: map[string]any{
			"name":   "Counterspell",
			"colors": []string{"U"},
			"number": nil,
		},
	}})
	require.NoError(t, err)
	require.Len(t, points, 1)

	payload := convertPayload(points[0].GetPayload())
	assert.Equal(t, "Counterspell", payload["name"])
	assert.Equal(t, []any{"U"}, payload["colors"])
	assert.Nil(t, payload["number"])

	_, err = toPoints([]vectordb.EmbeddingInput{{ID: "1"}})
	assert.Error(t, err)
}

func TestExtractValue(t *testing.T) {
	v := qdrant.NewValueMap(map[string]any{
		"i": 3,
		"f": 1.5,
		"b": true,
		"m": map[string]any{"standard": "Legal"},
	})
	out := convertPayload(v)
	assert.Equal(t, int64(3), out["i"])
	assert.Equal(t, 1.5, out["f"])
	assert.Equal(t, true, out["b"])
	assert.Equal(t, map[string]any{"standard": "Legal"}, out["m"])
}

func TestExtractVectorDetails(t *testing.T) {
	size, distance := extractVectorDetails(nil)
	assert.Equal(t, 0, size)
	assert.Equal(t, "", distance)

	info := &qdrant.CollectionInfo{
		Config: &qdrant.CollectionConfig{
			Params: &qdrant.CollectionParams{
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{Size: 768, Distance: qdrant.Distance_Cosine}),
			},
		},
	}
	size, distance = extractVectorDetails(info)
	assert.Equal(t, 768, size)
	assert.Equal(t, "Cosine", distance)
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultGRPCPort, cfg.port())
	assert.Equal(t, DefaultBatchSize, cfg.batchSize())

	cfg = FromEndpoint("cluster.cloud.qdrant.io").WithApiKey("k").WithTLS(true)
	assert.Equal(t, "cluster.cloud.qdrant.io", cfg.Endpoint)
	assert.True(t, cfg.UseTLS)
	assert.Equal(t, "k", cfg.ApiKey)
}
