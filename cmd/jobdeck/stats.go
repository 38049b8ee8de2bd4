package main

import (
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/cli"
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/engine"
	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/spf13/cobra"
)

// Shared filter flags for the one-shot commands.
type filterFlags struct {
	sectors   []string
	sizes     []string
	minRating float64
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringSliceVar(&f.sectors, "sector", nil, "sector filter (repeatable; default: first 3 alphabetically)")
	cmd.Flags().StringSliceVar(&f.sizes, "size", nil, "company size filter (repeatable; default: first 3)")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", config.DefaultMinRating, "minimum rating (inclusive, 0-5)")
}

func statsCmd() *cobra.Command {
	var flags filterFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print summary metrics for the filtered view",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStats(flags)
		},
	}
	addFilterFlags(cmd, &flags)
	return cmd
}

func runStats(flags filterFlags) error {
	ds, err := loadCleaned(dataPath())
	if err != nil {
		return err
	}

	criteria := criteriaFromFlags(ds, flags.sectors, flags.sizes, flags.minRating)
	view := engine.Filter(ds, criteria)
	s := engine.Summarize(view)

	var b strings.Builder
	fmt.Fprintf(&b, "Total Positions:   %d\n", s.Count)
	fmt.Fprintf(&b, "Avg Salary:        %s\n", formatMoney(s.MeanAvgSalary))
	fmt.Fprintf(&b, "Avg Rating:        %s\n", formatFloat(s.MeanRating))
	fmt.Fprintf(&b, "Unique Companies:  %d\n", s.UniqueCompanies)
	fmt.Fprintf(&b, "Records (dataset): %d cleaned, %d dropped", len(ds.Records), ds.DroppedCount())

	fmt.Println(cli.RenderBox("Summary", b.String()))

	means := engine.GroupMeans(view, engine.BySize, engine.AvgSalaryValue)
	if len(means) > 0 {
		var g strings.Builder
		for i, gm := range means {
			fmt.Fprintf(&g, "%-24s %s", gm.Group, formatMoney(gm.Mean))
			if i < len(means)-1 {
				g.WriteString("\n")
			}
		}
		fmt.Println(cli.RenderBox("Avg Salary by Company Size", g.String()))
	}

	return nil
}

func formatMoney(v float64) string {
	if model.IsMissing(v) {
		return "n/a"
	}
	return fmt.Sprintf("$%.0f", v)
}

func formatFloat(v float64) string {
	if model.IsMissing(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
