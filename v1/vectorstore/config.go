package vectorstore

import (
	"time"

	"github.com/cardforge/mtgsearch/v1/qdrant"
)

const (
	// BackendLocal connects to a self-hosted Qdrant.
	BackendLocal = "local"

	// BackendCloud connects to a managed Qdrant Cloud cluster.
	BackendCloud = "cloud"

	// DefaultCollection holds the card points.
	DefaultCollection = "Cards"
)

// Config selects the Qdrant deployment the card collection lives in.
type Config struct {
	// Backend is "local" or "cloud".
	Backend string `yaml:"backend" envconfig:"VECTORSTORE_BACKEND"`

	// Collection is the name of the card collection.
	Collection string `yaml:"collection" envconfig:"VECTORSTORE_COLLECTION"`

	Local LocalConfig `yaml:"local"`
	Cloud CloudConfig `yaml:"cloud"`

	Timeout            time.Duration `yaml:"timeout" envconfig:"QDRANT_TIMEOUT"`
	BatchSize          int           `yaml:"batch_size" envconfig:"QDRANT_BATCH_SIZE"`
	CheckCompatibility bool          `yaml:"check_compatibility" envconfig:"QDRANT_CHECK_COMPATIBILITY"`
}

// LocalConfig addresses a self-hosted Qdrant over plain gRPC.
type LocalConfig struct {
	Host string `yaml:"host" envconfig:"QDRANT_HOST"`
	// Port is kept as text so an unset value can be told apart from a bad one.
	Port string `yaml:"port" envconfig:"QDRANT_PORT"`
}

// CloudConfig addresses a Qdrant Cloud cluster over TLS.
type CloudConfig struct {
	// URL is the cluster URL or host, e.g. "https://xyz.eu-central.aws.cloud.qdrant.io".
	URL    string `yaml:"url" envconfig:"QDRANT_CLOUD_URL"`
	APIKey string `yaml:"api_key" envconfig:"QDRANT_CLOUD_API_KEY"`
	// Port overrides the gRPC port; 6334 when zero.
	Port int `yaml:"port" envconfig:"QDRANT_CLOUD_PORT"`
}

// DefaultConfig targets a local Qdrant on the default gRPC port.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendLocal,
		Collection: DefaultCollection,
		Local: LocalConfig{
			Host: "localhost",
			Port: "6334",
		},
		Timeout:   5 * time.Second,
		BatchSize: qdrant.DefaultBatchSize,
	}
}

// LocalBackend returns a config for a self-hosted Qdrant.
func LocalBackend(host, port string) Config {
	cfg := DefaultConfig()
	cfg.Local = LocalConfig{Host: host, Port: port}
	return cfg
}

// CloudBackend returns a config for a Qdrant Cloud cluster.
func CloudBackend(url, apiKey string) Config {
	cfg := DefaultConfig()
	cfg.Backend = BackendCloud
	cfg.Local = LocalConfig{}
	cfg.Cloud = CloudConfig{URL: url, APIKey: apiKey}
	return cfg
}
