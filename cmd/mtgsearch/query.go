package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/cardforge/mtgsearch/v1/search"
)

type queryOptions struct {
	limit       int
	maxDistance float32
	rarity      string
	colors      []string
	format      string
}

// defaultQueryOptions are tighter than the web defaults: three cards within a
// cosine distance of 0.5.
func defaultQueryOptions() queryOptions {
	return queryOptions{limit: 3, maxDistance: 0.5}
}

func newQueryCmd(global *globalOptions) *cobra.Command {
	opts := defaultQueryOptions()

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Run a semantic search and print the matching cards as JSON",
		Example: `  mtgsearch query "cheap blue counterspell"
  mtgsearch query --limit 10 --color R --format modern "burn spell"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, global, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.limit, "limit", opts.limit, fmt.Sprintf("maximum number of cards (at most %d)", search.MaxLimit))
	flags.Float32Var(&opts.maxDistance, "max-distance", opts.maxDistance, "maximum cosine distance between query and card")
	flags.StringVar(&opts.rarity, "rarity", "", "only cards of this rarity")
	flags.StringSliceVar(&opts.colors, "color", nil, "only cards with these colours (W, U, B, R, G); repeatable")
	flags.StringVar(&opts.format, "format", "", "only cards legal in this format")
	return cmd
}

func runQuery(cmd *cobra.Command, global *globalOptions, opts queryOptions, text string) error {
	cfg, err := global.load()
	if err != nil {
		return err
	}

	var svc *search.Service
	app := searchApp(cfg, fx.Populate(&svc))

	return runWithin(cmd.Context(), app, func(ctx context.Context) error {
		maxDistance := opts.maxDistance
		results, err := svc.Search(ctx, search.Query{
			Text:        text,
			Limit:       opts.limit,
			MaxDistance: &maxDistance,
			Rarity:      opts.rarity,
			Colors:      opts.colors,
			Format:      opts.format,
		})
		if err != nil {
			return err
		}
		return printCards(cmd, results)
	})
}

func printCards(cmd *cobra.Command, results []search.Result) error {
	out := cmd.OutOrStdout()
	for _, r := range results {
		data, err := json.MarshalIndent(r.Card, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}
