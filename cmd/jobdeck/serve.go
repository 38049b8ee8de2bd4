package main

import (
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard views as a JSON API",
		Long: `Serve the filter and aggregation pipeline over HTTP for a web frontend:
/api/jobs, /api/summary, /api/top, /api/groups, /api/export.csv, /healthz.
A missing or malformed dataset degrades to error payloads; the server
stays up and recovers when the file is fixed.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8420", "listen address")
	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	provider, cleanup, err := newProvider(dataPath())
	if err != nil {
		return err
	}
	defer cleanup()

	return server.ListenAndServe(cmd.Context(), viper.GetString(config.KeyServerAddr), server.Deps{
		Data: provider,
	})
}
