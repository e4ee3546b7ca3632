// Package metrics exposes the service's Prometheus metrics.
//
// NewMetrics creates an isolated registry with the HTTP request series
// (requests_total, request_duration_seconds) and the domain series
// (cards_ingested_total, card_rows_skipped_total, search_duration_seconds,
// search_results). Every series carries a constant service label. The registry is
// served on /metrics by a dedicated server whose lifecycle the FXModule manages.
//
// Configuration:
//
//	METRICS_ADDRESS=:9090                    # empty disables the server
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true   # Go runtime and process collectors
//	METRICS_NAMESPACE=mtgsearch
//	METRICS_SERVICE_NAME=mtgsearch
package metrics
