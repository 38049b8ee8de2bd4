package main

import (
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/export"
	"github.com/jobdeck/jobdeck/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: filter panes, headline metrics,
top-title and salary breakdowns, and a paginated table of the filtered
records. Press ? inside for keybindings.`,
		RunE: runDash,
	}

	cmd.Flags().Int("page-size", config.DefaultPageSize, "initial rows per page (5-50)")
	cmd.Flags().String("out", export.DefaultFileName, "file the export keybinding writes to")
	_ = viper.BindPFlag("dash.page_size", cmd.Flags().Lookup("page-size"))
	_ = viper.BindPFlag("dash.out", cmd.Flags().Lookup("out"))

	return cmd
}

func runDash(cmd *cobra.Command, _ []string) error {
	provider, cleanup, err := newProvider(dataPath())
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(cmd.Context(), tui.Config{
		Provider:   provider,
		PageSize:   config.ClampPageSize(viper.GetInt("dash.page_size")),
		ExportPath: viper.GetString("dash.out"),
	})
}
