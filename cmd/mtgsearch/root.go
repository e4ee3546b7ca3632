package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardforge/mtgsearch/v1/config"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	envFile    string
	backend    string
}

// load reads and validates the configuration selected by the flags.
func (o *globalOptions) load() (*config.Config, error) {
	var envFiles []string
	if o.envFile != "" {
		envFiles = append(envFiles, o.envFile)
	}

	cfg, err := config.Load(o.configPath, envFiles...)
	if err != nil {
		return nil, err
	}
	cfg.UseBackend(o.backend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// legacyOptions keep the flag-driven invocation working:
// mtgsearch --build-db [--num-cards N] [--query TEXT].
type legacyOptions struct {
	buildDB  bool
	numCards int
	query    string
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}
	legacy := &legacyOptions{}

	root := &cobra.Command{
		Use:   "mtgsearch",
		Short: "Semantic search over Magic: The Gathering cards",
		Long: `mtgsearch loads a cards CSV export into a Qdrant collection, embedding each
card with a text embedding model, and answers natural-language queries
against it from the command line or over HTTP.

The vector store backend is chosen with --client (or VECTORSTORE_BACKEND):
  local  QDRANT_HOST and QDRANT_PORT
  cloud  QDRANT_CLOUD_URL and QDRANT_CLOUD_API_KEY`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !legacy.buildDB && strings.TrimSpace(legacy.query) == "" {
				_ = cmd.Usage()
				return errors.New("at least one of --build-db or --query must be provided")
			}
			return runLegacy(cmd, global, legacy)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&global.configPath, "config", "", "YAML config file")
	flags.StringVar(&global.envFile, "env-file", "", "env file to load (default .env)")
	flags.StringVar(&global.backend, "client", "", `vector store backend: "local" or "cloud" (default from config)`)

	root.Flags().BoolVar(&legacy.buildDB, "build-db", false, "rebuild the card collection from the cards CSV")
	root.Flags().IntVar(&legacy.numCards, "num-cards", 0, "stop after this many cards (0 loads all)")
	root.Flags().StringVar(&legacy.query, "query", "", "run a semantic search with the given query text")

	root.AddCommand(
		newServeCmd(global),
		newBuildDBCmd(global),
		newQueryCmd(global),
	)
	return root
}

func runLegacy(cmd *cobra.Command, global *globalOptions, legacy *legacyOptions) error {
	if legacy.buildDB {
		if err := runBuildDB(cmd, global, buildDBOptions{numCards: legacy.numCards}); err != nil {
			return err
		}
	}
	if q := strings.TrimSpace(legacy.query); q != "" {
		return runQuery(cmd, global, defaultQueryOptions(), q)
	}
	return nil
}
