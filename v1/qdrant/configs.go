package qdrant

import (
	"time"
)

const (
	// DefaultGRPCPort is the gRPC port Qdrant listens on.
	DefaultGRPCPort = 6334

	// DefaultBatchSize is the number of points sent per upsert request.
	DefaultBatchSize = 200
)

// Config holds connection and behavior settings for the Qdrant client.
//
// Example (programmatic):
//
//	cfg := qdrant.DefaultConfig()
//	cfg.Endpoint = "localhost"
//	cfg.ApiKey = os.Getenv("QDRANT_API_KEY")
//
// Example (builder style):
//
//	cfg := qdrant.FromEndpoint("xyz.cloud.qdrant.io").
//	    WithApiKey(os.Getenv("QDRANT_CLOUD_API_KEY")).
//	    WithTLS(true)
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" envconfig:"QDRANT_HOST"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" envconfig:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" envconfig:"QDRANT_API_KEY"`

	// UseTLS enables transport security, required by Qdrant Cloud.
	UseTLS bool `yaml:"use_tls" envconfig:"QDRANT_USE_TLS"`

	// Timeout bounds the startup health check.
	Timeout time.Duration `yaml:"timeout" envconfig:"QDRANT_TIMEOUT"`

	// BatchSize is the number of points per upsert request.
	BatchSize int `yaml:"batch_size" envconfig:"QDRANT_BATCH_SIZE"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" envconfig:"QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for a local Qdrant.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:           "localhost",
		Port:               DefaultGRPCPort,
		Timeout:            5 * time.Second,
		BatchSize:          DefaultBatchSize,
		CheckCompatibility: true,
	}
}

// FromEndpoint returns a default config pre-filled with a specific host.
func FromEndpoint(host string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = host
	return cfg
}

func (c *Config) WithApiKey(key string) *Config {
	c.ApiKey = key
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithTLS(enabled bool) *Config {
	c.UseTLS = enabled
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithCompatibilityCheck(enabled bool) *Config {
	c.CheckCompatibility = enabled
	return c
}

func (c *Config) port() int {
	if c.Port == 0 {
		return DefaultGRPCPort
	}
	return c.Port
}

func (c *Config) batchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 5 * time.Second
	}
	return c.Timeout
}
