package embedding

import (
	"fmt"
	"strings"
)

const (
	// ProviderOllama calls a local Ollama server's /api/embed endpoint.
	ProviderOllama = "ollama"

	// ProviderOpenAI calls an OpenAI-compatible /embeddings endpoint.
	ProviderOpenAI = "openai"

	DefaultOllamaEndpoint = "http://host.docker.internal:11434"
	DefaultModel          = "nomic-embed-text"
	DefaultDimensions     = 768
)

// Config selects and configures the embedding provider.
//
// For the openai provider, Endpoint must point to the API root
// (e.g. "https://api.openai.com/v1"); "/embeddings" is appended.
type Config struct {
	Provider string `yaml:"provider" envconfig:"EMBEDDING_PROVIDER"`

	// Endpoint is the base URL of the provider.
	Endpoint string `yaml:"endpoint" envconfig:"EMBEDDING_ENDPOINT"`

	Model string `yaml:"model" envconfig:"EMBEDDING_MODEL"`

	// ServiceToken is sent as a bearer token. Required by the openai provider.
	ServiceToken string `yaml:"service_token" envconfig:"EMBEDDING_SERVICE_TOKEN"`

	// Dimensions is the vector size the model produces; responses of another size are rejected.
	Dimensions int `yaml:"dimensions" envconfig:"EMBEDDING_DIMENSIONS"`

	HTTPTimeoutS int `yaml:"http_timeout_seconds" envconfig:"EMBEDDING_HTTP_TIMEOUT_SECONDS"`

	// BatchSize caps the number of texts per provider request.
	BatchSize int `yaml:"batch_size" envconfig:"EMBEDDING_BATCH_SIZE"`

	// MaxRetries is the number of attempts for transient failures (network, 429, 5xx).
	MaxRetries int `yaml:"max_retries" envconfig:"EMBEDDING_MAX_RETRIES"`
}

// DefaultConfig targets a local Ollama serving nomic-embed-text.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderOllama,
		Endpoint:     DefaultOllamaEndpoint,
		Model:        DefaultModel,
		Dimensions:   DefaultDimensions,
		HTTPTimeoutS: 30,
		BatchSize:    32,
		MaxRetries:   3,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case ProviderOllama:
	case ProviderOpenAI:
		if c.ServiceToken == "" {
			return fmt.Errorf("embedding: missing EMBEDDING_SERVICE_TOKEN")
		}
	default:
		return fmt.Errorf("embedding: unknown provider %q (want %q or %q)", c.Provider, ProviderOllama, ProviderOpenAI)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	if c.Dimensions <= 0 {
		return fmt.Errorf("embedding: EMBEDDING_DIMENSIONS must be positive")
	}
	return nil
}

func (c *Config) batchSize() int {
	if c.BatchSize <= 0 {
		return 32
	}
	return c.BatchSize
}

func (c *Config) maxRetries() uint {
	if c.MaxRetries <= 0 {
		return 1
	}
	return uint(c.MaxRetries)
}

func (c *Config) timeoutSeconds() int {
	if c.HTTPTimeoutS <= 0 {
		return 30
	}
	return c.HTTPTimeoutS
}
