package tracer

// Config defines the tracing settings.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as the deployment environment.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector. When false spans are
	// still created (and show up in logs) but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"OTEL_EXPORT_ENABLED"`

	// Endpoint overrides the collector URL, e.g. "http://otel-collector:4318".
	// Empty means the OTEL_EXPORTER_OTLP_* environment defaults.
	Endpoint string `yaml:"endpoint" envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}
