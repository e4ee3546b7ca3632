package vectorstore

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/qdrant"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// ErrMissingSetting is returned when a setting required by the selected
// backend is empty. The error message names the environment variables.
var ErrMissingSetting = errors.New("missing required setting")

// Store is the selected backend's vectordb.Service plus its connection.
type Store struct {
	vectordb.Service

	client     *qdrant.QdrantClient
	collection string
}

// NewStore validates the backend settings, connects and returns the store.
func NewStore(cfg Config, log logger.Logger) (*Store, error) {
	qcfg, err := ClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{Config: qcfg, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("vectorstore: %s backend: %w", backendName(cfg), err)
	}

	return &Store{
		Service:    qdrant.NewAdapter(client),
		client:     client,
		collection: collectionName(cfg),
	}, nil
}

// Collection returns the name of the card collection.
func (s *Store) Collection() string {
	return s.collection
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ClientConfig validates cfg for its backend and builds the Qdrant client config.
func ClientConfig(cfg Config) (*qdrant.Config, error) {
	switch backendName(cfg) {
	case BackendLocal:
		return localClientConfig(cfg)
	case BackendCloud:
		return cloudClientConfig(cfg)
	default:
		return nil, fmt.Errorf("vectorstore: unsupported backend %q (must be %q or %q)", cfg.Backend, BackendLocal, BackendCloud)
	}
}

func localClientConfig(cfg Config) (*qdrant.Config, error) {
	var missing []string
	if strings.TrimSpace(cfg.Local.Host) == "" {
		missing = append(missing, "QDRANT_HOST")
	}
	if strings.TrimSpace(cfg.Local.Port) == "" {
		missing = append(missing, "QDRANT_PORT")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("vectorstore: %w: %s must be set for the local backend", ErrMissingSetting, strings.Join(missing, " and "))
	}

	port, err := strconv.Atoi(strings.TrimSpace(cfg.Local.Port))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("vectorstore: invalid QDRANT_PORT %q", cfg.Local.Port)
	}

	qcfg := qdrant.FromEndpoint(strings.TrimSpace(cfg.Local.Host)).WithPort(port)
	return applyCommon(qcfg, cfg), nil
}

func cloudClientConfig(cfg Config) (*qdrant.Config, error) {
	var missing []string
	if strings.TrimSpace(cfg.Cloud.URL) == "" {
		missing = append(missing, "QDRANT_CLOUD_URL")
	}
	if strings.TrimSpace(cfg.Cloud.APIKey) == "" {
		missing = append(missing, "QDRANT_CLOUD_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("vectorstore: %w: %s must be set for the cloud backend", ErrMissingSetting, strings.Join(missing, " and "))
	}

	host, err := cloudHost(cfg.Cloud.URL)
	if err != nil {
		return nil, err
	}

	port := cfg.Cloud.Port
	if port == 0 {
		port = qdrant.DefaultGRPCPort
	}

	qcfg := qdrant.FromEndpoint(host).
		WithPort(port).
		WithApiKey(cfg.Cloud.APIKey).
		WithTLS(true)
	return applyCommon(qcfg, cfg), nil
}

// cloudHost extracts the host from a cluster URL. The REST port in the URL,
// if any, is dropped because the client speaks gRPC.
func cloudHost(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("vectorstore: invalid QDRANT_CLOUD_URL: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("vectorstore: invalid QDRANT_CLOUD_URL %q: no host", raw)
	}
	if ip := net.ParseIP(host); ip != nil && ip.To4() == nil {
		host = "[" + host + "]"
	}
	return host, nil
}

func applyCommon(qcfg *qdrant.Config, cfg Config) *qdrant.Config {
	if cfg.Timeout > 0 {
		qcfg.WithTimeout(cfg.Timeout)
	}
	if cfg.BatchSize > 0 {
		qcfg.BatchSize = cfg.BatchSize
	}
	return qcfg.WithCompatibilityCheck(cfg.CheckCompatibility)
}

func backendName(cfg Config) string {
	b := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if b == "" {
		return BackendLocal
	}
	return b
}

func collectionName(cfg Config) string {
	if cfg.Collection == "" {
		return DefaultCollection
	}
	return cfg.Collection
}
