package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/mtgsearch/v1/cards"
	"github.com/cardforge/mtgsearch/v1/search"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func noEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.env")
}

func TestRoot_RequiresAnAction(t *testing.T) {
	out, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of --build-db or --query")
	assert.Contains(t, out, "Usage:")
}

func TestRoot_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "build-db", "query"})

	for _, flag := range []string{"config", "client", "env-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestQuery_RequiresText(t *testing.T) {
	_, err := execute(t, "query")
	assert.ErrorContains(t, err, "requires at least 1 arg")
}

func TestQuery_Defaults(t *testing.T) {
	root := newRootCmd()
	query, _, err := root.Find([]string{"query"})
	require.NoError(t, err)

	assert.Equal(t, "3", query.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "0.5", query.Flags().Lookup("max-distance").DefValue)
}

func TestBuildDB_RejectsNegativeLimit(t *testing.T) {
	_, err := execute(t, "build-db", "--num-cards", "-1")
	assert.ErrorContains(t, err, "--num-cards")
}

func TestInvalidBackendFailsBeforeConnecting(t *testing.T) {
	for _, args := range [][]string{
		{"--client", "weaviate", "query", "dragon"},
		{"--client", "weaviate", "build-db"},
		{"--client", "weaviate", "--query", "dragon"},
	} {
		_, err := execute(t, append(args, "--env-file", noEnv(t))...)
		assert.ErrorContains(t, err, "unsupported backend", args)
	}
}

func TestCloudBackendNamesMissingSettings(t *testing.T) {
	t.Setenv("QDRANT_CLOUD_URL", "")
	t.Setenv("QDRANT_CLOUD_API_KEY", "")

	_, err := execute(t, "--client", "cloud", "--env-file", noEnv(t), "query", "dragon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QDRANT_CLOUD_URL and QDRANT_CLOUD_API_KEY")
}

func TestPrintCards(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)

	rarity := "rare"
	err := printCards(cmd, []search.Result{
		{Card: &cards.Card{MultiverseID: 1, Name: "Shivan Dragon", Rarity: &rarity}, Distance: 0.1},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "{\n  \"multiverse_id\": 1,\n  \"name\": \"Shivan Dragon\",")
	assert.Contains(t, out.String(), `"rarity": "rare"`)
}
