package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/cardforge/mtgsearch/v1/embedding"
	"github.com/cardforge/mtgsearch/v1/ingest"
	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/metrics"
	"github.com/cardforge/mtgsearch/v1/minio"
	"github.com/cardforge/mtgsearch/v1/search"
	"github.com/cardforge/mtgsearch/v1/server"
	"github.com/cardforge/mtgsearch/v1/tracer"
	"github.com/cardforge/mtgsearch/v1/vectorstore"
)

// ServiceName names the service in logs, metrics and traces.
const ServiceName = "mtgsearch"

// DefaultEnvFile is loaded by Load when no env file is given.
const DefaultEnvFile = ".env"

// Config is the complete application configuration.
type Config struct {
	Logger      logger.Config      `yaml:"logger"`
	Tracer      tracer.Config      `yaml:"tracer"`
	Metrics     metrics.Config     `yaml:"metrics"`
	Embedding   embedding.Config   `yaml:"embedding"`
	VectorStore vectorstore.Config `yaml:"vectorstore"`
	Minio       minio.Config       `yaml:"minio"`
	Ingest      ingest.Config      `yaml:"ingest"`
	Search      search.Config      `yaml:"search"`
	Server      server.Config      `yaml:"server"`
}

// Default returns a configuration for a local Qdrant and a local Ollama.
func Default() *Config {
	return &Config{
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: ServiceName,
		},
		Tracer: tracer.Config{
			ServiceName: ServiceName,
			AppEnv:      "local",
		},
		Metrics: metrics.Config{
			ServiceName: ServiceName,
		},
		Embedding:   *embedding.DefaultConfig(),
		VectorStore: vectorstore.DefaultConfig(),
		Ingest:      ingest.DefaultConfig(),
		Search:      search.DefaultConfig(),
		Server:      server.DefaultConfig(),
	}
}

// Load builds the configuration in three layers: defaults, the YAML file at
// path (skipped when path is empty) and environment variables. Env files are
// loaded into the environment first without overriding variables that are
// already set; missing env files are ignored. With no envFiles, ".env" in the
// working directory is tried.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// UseBackend selects the vector store backend, "local" or "cloud".
func (c *Config) UseBackend(backend string) {
	if backend != "" {
		c.VectorStore.Backend = backend
	}
}

// Validate reports every missing or invalid setting needed to reach the
// vector store and the embedding provider.
func (c *Config) Validate() error {
	var errs []error
	if _, err := vectorstore.ClientConfig(c.VectorStore); err != nil {
		errs = append(errs, err)
	}
	if err := c.Embedding.Validate(); err != nil {
		errs = append(errs, err)
	}
	if minio.IsObjectURL(c.Ingest.Source) && !c.Minio.Enabled() {
		errs = append(errs, fmt.Errorf("config: %s requires MINIO_ENDPOINT", c.Ingest.Source))
	}
	return errors.Join(errs...)
}
