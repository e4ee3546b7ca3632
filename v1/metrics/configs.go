package metrics

// DefaultMetricsAddress is the listen address used when none is configured.
const DefaultMetricsAddress = ":9090"

// Config defines how metrics are collected and exposed.
type Config struct {
	// Address is where the /metrics HTTP server listens, e.g. ":9090".
	// An empty address disables the server; metrics are still collected.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name, e.g. "mtgsearch_requests_total".
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
