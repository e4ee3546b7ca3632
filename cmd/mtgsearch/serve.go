package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardforge/mtgsearch/v1/server"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search page and the /search and /health endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			app := searchApp(cfg, server.FXModule)
			return runWithin(cmd.Context(), app, func(ctx context.Context) error {
				// blocks until SIGINT or SIGTERM
				sig := <-app.Wait()
				if sig.ExitCode != 0 {
					return fmt.Errorf("shutdown with exit code %d", sig.ExitCode)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :5000)")
	return cmd
}
