package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is the metrics contract used by the server, search and ingest packages.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// IncrementRequests counts an HTTP request by endpoint and status code.
	IncrementRequests(endpoint, status string)

	// RecordRequestDuration records the seconds elapsed since start for an endpoint.
	RecordRequestDuration(start time.Time, endpoint string)

	// AddCardsIngested counts cards written to a collection.
	AddCardsIngested(collection string, n int)

	// AddRowsSkipped counts CSV rows that produced no card.
	AddRowsSkipped(reason string, n int)

	// ObserveSearch records a search's latency, outcome and hit count.
	ObserveSearch(start time.Time, outcome string, hits int)

	// CreateCounter creates and registers a new CounterVec.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates and registers a new HistogramVec.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec
}
