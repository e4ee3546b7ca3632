package qdrant

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/cardforge/mtgsearch/v1/logger"
	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// QdrantContainer represents a Qdrant container for testing
type QdrantContainer struct {
	testcontainers.Container
	Host string
	Port string
}

func setupQdrantContainer(ctx context.Context) (*QdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := strconv.Itoa(port)
	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.13.4",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
		},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "6334")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	if err := waitForQdrantReady(host, mappedPort.Port(), 30*time.Second); err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &QdrantContainer{Container: c, Host: host, Port: mappedPort.Port()}, nil
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func waitForQdrantReady(host, port string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			time.Sleep(2 * time.Second)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
}

func generateRandomVector(dim int) []float32 {
	v := make([]float32, dim)
	for i := range v {
		v[i] = rand.Float32()
	}
	return v
}

func TestQdrantWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	qc, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := qc.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	portNum, err := strconv.Atoi(qc.Port)
	require.NoError(t, err)

	var db vectordb.Service

	app := fxtest.New(t,
		fx.Provide(
			func() *Config {
				return FromEndpoint(qc.Host).WithPort(portNum).WithCompatibilityCheck(false).WithTimeout(10 * time.Second)
			},
			func() logger.Logger { return logger.NewNop() },
		),
		FXModule,
		fx.Populate(&db),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NoError(t, db.Health(ctx))

	t.Run("EnsureCollectionIsIdempotent", func(t *testing.T) {
		require.NoError(t, db.EnsureCollection(ctx, "Cards_ensure", 8))
		require.NoError(t, db.EnsureCollection(ctx, "Cards_ensure", 8))
		assert.Error(t, db.EnsureCollection(ctx, "", 8))

		info, err := db.GetCollection(ctx, "Cards_ensure")
		require.NoError(t, err)
		assert.Equal(t, 8, info.VectorSize)
		assert.Equal(t, "Cosine", info.Distance)
	})

	t.Run("InsertSearchFilter", func(t *testing.T) {
		const collection = "Cards_search"
		require.NoError(t, db.EnsureCollection(ctx, collection, 8))

		inputs := []vectordb.EmbeddingInput{
			{
				ID:     "6e1f3b52-6d3a-5f5a-9b8e-8a1d1d2b0001",
				Vector: generateRandomVector(8),
				Payload: map[string]any{
					"name":   "Lightning Bolt",
					"rarity": "common",
					"colors": []string{"R"},
					"number": 161,
				},
			},
			{
				ID:     "6e1f3b52-6d3a-5f5a-9b8e-8a1d1d2b0002",
				Vector: generateRandomVector(8),
				Payload: map[string]any{
					"name":   "Serra Angel",
					"rarity": "uncommon",
					"colors": []string{"W"},
					"number": nil,
				},
			},
		}
		require.NoError(t, db.Insert(ctx, collection, inputs))

		results, err := db.Search(ctx, vectordb.SearchRequest{
			CollectionName: collection,
			Vector:         inputs[0].Vector,
			TopK:           5,
		})
		require.NoError(t, err)
		require.NotEmpty(t, results[0])
		assert.Equal(t, inputs[0].ID, results[0][0].ID)
		assert.Equal(t, "Lightning Bolt", results[0][0].Payload["name"])
		assert.Equal(t, []any{"R"}, results[0][0].Payload["colors"])
		assert.InDelta(t, 0, results[0][0].Distance(), 1e-4)

		filtered, err := db.Search(ctx, vectordb.SearchRequest{
			CollectionName: collection,
			Vector:         inputs[0].Vector,
			TopK:           5,
			Filters:        vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("colors", "W"))),
		})
		require.NoError(t, err)
		require.Len(t, filtered[0], 1)
		assert.Equal(t, "Serra Angel", filtered[0][0].Payload["name"])

		threshold := float32(0.9999)
		strict, err := db.Search(ctx, vectordb.SearchRequest{
			CollectionName: collection,
			Vector:         inputs[0].Vector,
			TopK:           5,
			ScoreThreshold: &threshold,
		})
		require.NoError(t, err)
		assert.Len(t, strict[0], 1)
	})

	t.Run("DeleteCollection", func(t *testing.T) {
		require.NoError(t, db.EnsureCollection(ctx, "Cards_delete", 8))
		require.NoError(t, db.DeleteCollection(ctx, "Cards_delete"))
		exists, err := db.CollectionExists(ctx, "Cards_delete")
		require.NoError(t, err)
		assert.False(t, exists)
		require.NoError(t, db.DeleteCollection(ctx, "Cards_delete"))
	})
}
