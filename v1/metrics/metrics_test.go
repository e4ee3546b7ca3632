package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_ServerDisabledWithoutAddress(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	assert.Nil(t, m.Server)
	assert.NotNil(t, m.Registry)
}

func TestMetrics_DomainSeries(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test", Namespace: "mtg"})

	m.AddCardsIngested("Cards", 200)
	m.AddCardsIngested("Cards", 0)
	m.AddRowsSkipped("missing_multiverse_id", 3)
	m.IncrementRequests("/search", "200")
	m.RecordRequestDuration(time.Now(), "/search")
	m.ObserveSearch(time.Now(), "ok", 4)

	assert.Equal(t, float64(200), testutil.ToFloat64(m.cardsIngested.WithLabelValues("Cards")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.rowsSkipped.WithLabelValues("missing_multiverse_id")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/search", "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `mtg_cards_ingested_total{collection="Cards",service="test"} 200`), body)
	assert.Contains(t, body, "mtg_search_duration_seconds")
}

func TestMetrics_CreateCounter(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	c := m.CreateCounter("embedding_requests_total", "Embedding calls", []string{"provider"})
	c.WithLabelValues("ollama").Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(c.WithLabelValues("ollama")))
}
