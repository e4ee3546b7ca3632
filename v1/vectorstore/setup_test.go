package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/mtgsearch/v1/logger"
)

func TestClientConfig_Local(t *testing.T) {
	qcfg, err := ClientConfig(LocalBackend("qdrant", "6334"))
	require.NoError(t, err)
	assert.Equal(t, "qdrant", qcfg.Endpoint)
	assert.Equal(t, 6334, qcfg.Port)
	assert.False(t, qcfg.UseTLS)
	assert.Empty(t, qcfg.ApiKey)
}

func TestClientConfig_LocalMissing(t *testing.T) {
	_, err := ClientConfig(LocalBackend("", ""))
	require.ErrorIs(t, err, ErrMissingSetting)
	assert.ErrorContains(t, err, "QDRANT_HOST and QDRANT_PORT")

	_, err = ClientConfig(LocalBackend("qdrant", ""))
	require.ErrorIs(t, err, ErrMissingSetting)
	assert.ErrorContains(t, err, "QDRANT_PORT")
	assert.NotContains(t, err.Error(), "QDRANT_HOST")

	_, err = ClientConfig(LocalBackend("qdrant", "http"))
	assert.ErrorContains(t, err, "invalid QDRANT_PORT")
}

func TestClientConfig_Cloud(t *testing.T) {
	qcfg, err := ClientConfig(CloudBackend("https://abc.eu-central-1-0.aws.cloud.qdrant.io:6333", "key"))
	require.NoError(t, err)
	assert.Equal(t, "abc.eu-central-1-0.aws.cloud.qdrant.io", qcfg.Endpoint)
	assert.Equal(t, 6334, qcfg.Port)
	assert.True(t, qcfg.UseTLS)
	assert.Equal(t, "key", qcfg.ApiKey)

	cfg := CloudBackend("abc.cloud.qdrant.io", "key")
	cfg.Cloud.Port = 443
	qcfg, err = ClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "abc.cloud.qdrant.io", qcfg.Endpoint)
	assert.Equal(t, 443, qcfg.Port)
}

func TestClientConfig_CloudMissing(t *testing.T) {
	_, err := ClientConfig(CloudBackend("", ""))
	require.ErrorIs(t, err, ErrMissingSetting)
	assert.ErrorContains(t, err, "QDRANT_CLOUD_URL and QDRANT_CLOUD_API_KEY")

	_, err = ClientConfig(CloudBackend("https://abc.cloud.qdrant.io", ""))
	require.ErrorIs(t, err, ErrMissingSetting)
	assert.ErrorContains(t, err, "QDRANT_CLOUD_API_KEY")
}

func TestClientConfig_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "weaviate"
	_, err := ClientConfig(cfg)
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestNewStore_FailsBeforeConnectingOnMissingSettings(t *testing.T) {
	_, err := NewStore(CloudBackend("", "key"), logger.NewNop())
	assert.ErrorIs(t, err, ErrMissingSetting)
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, DefaultCollection, collectionName(Config{}))
	assert.Equal(t, "Cards_v2", collectionName(Config{Collection: "Cards_v2"}))
}
