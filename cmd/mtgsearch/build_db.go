package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/ingest"
)

type buildDBOptions struct {
	numCards int
	keep     bool
	source   string
}

func newBuildDBCmd(global *globalOptions) *cobra.Command {
	opts := buildDBOptions{}

	cmd := &cobra.Command{
		Use:   "build-db",
		Short: "Rebuild the card collection from the cards CSV",
		Long: `Drops and recreates the card collection, then loads the cards export.
Rows without a multiverse id are skipped. Use --keep to upsert into the
existing collection instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.numCards < 0 {
				return fmt.Errorf("--num-cards must not be negative")
			}
			return runBuildDB(cmd, global, opts)
		},
	}

	cmd.Flags().IntVar(&opts.numCards, "num-cards", 0, "stop after this many cards (0 loads all)")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "keep the existing collection and upsert into it")
	cmd.Flags().StringVar(&opts.source, "source", "", `CSV path or "s3://bucket/key" (default from config)`)
	return cmd
}

func runBuildDB(cmd *cobra.Command, global *globalOptions, opts buildDBOptions) error {
	cfg, err := global.load()
	if err != nil {
		return err
	}

	var loader *ingest.Loader
	app := ingestApp(cfg, fx.Populate(&loader))

	return runWithin(cmd.Context(), app, func(ctx context.Context) error {
		stats, err := loader.Rebuild(ctx, ingest.Options{
			Source:   opts.source,
			Limit:    opts.numCards,
			Recreate: !opts.keep,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %d cards (%d rows read, %d skipped)\n",
			stats.CardsStored, stats.RowsRead, stats.RowsSkipped)
		return nil
	})
}
