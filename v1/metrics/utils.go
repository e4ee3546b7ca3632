package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementRequests counts an HTTP request.
// Example: m.IncrementRequests("/search", "200")
func (m *Metrics) IncrementRequests(endpoint, status string) {
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordRequestDuration records the duration (in seconds) for a request endpoint.
// Example: defer m.RecordRequestDuration(time.Now(), "/search")
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// AddCardsIngested counts cards written to collection.
func (m *Metrics) AddCardsIngested(collection string, n int) {
	if n <= 0 {
		return
	}
	m.cardsIngested.WithLabelValues(collection).Add(float64(n))
}

// AddRowsSkipped counts skipped CSV rows by reason.
func (m *Metrics) AddRowsSkipped(reason string, n int) {
	if n <= 0 {
		return
	}
	m.rowsSkipped.WithLabelValues(reason).Add(float64(n))
}

// ObserveSearch records the latency, outcome ("ok", "empty", "error") and hit count of a search.
func (m *Metrics) ObserveSearch(start time.Time, outcome string, hits int) {
	m.searchDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if outcome != "error" {
		m.searchResults.Observe(float64(hits))
	}
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
