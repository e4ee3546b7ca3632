package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry of the service and the HTTP server that
// exposes it.
type Metrics struct {
	// Server serves /metrics. Nil when Config.Address is empty.
	Server *http.Server

	// Registry is the isolated registry all series are registered in.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cardsIngested   *prometheus.CounterVec
	rowsSkipped     *prometheus.CounterVec
	searchDuration  *prometheus.HistogramVec
	searchResults   prometheus.Histogram
}

// NewMetrics creates a dedicated registry, registers the service metrics and,
// when an address is configured, an HTTP server exposing them.
//
// Every series carries the constant label service="<cfg.ServiceName>".
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "mtgsearch"})
//	defer m.RecordRequestDuration(time.Now(), "/search")
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total", "Total number of processed HTTP requests", []string{"endpoint", "status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.cardsIngested = createCounterVec(cfg.Namespace, "cards_ingested_total", "Cards written to the vector store", []string{"collection"})
	m.rowsSkipped = createCounterVec(cfg.Namespace, "card_rows_skipped_total", "CSV rows skipped during ingestion", []string{"reason"})
	m.searchDuration = createHistogramVec(cfg.Namespace, "search_duration_seconds", "Duration of semantic searches in seconds", []string{"outcome"}, prometheus.DefBuckets)
	m.searchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "search_results",
		Help:      "Number of cards returned per search",
		Buckets:   []float64{0, 1, 2, 3, 5, 10, 25, 50},
	})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.cardsIngested,
		m.rowsSkipped,
		m.searchDuration,
		m.searchResults,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: mux,
		}
	}

	return m
}

// Handler returns an http.Handler serving the registry, for mounting on another router.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
