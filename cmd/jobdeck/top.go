package main

import (
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/cli"
	"github.com/jobdeck/jobdeck/internal/engine"

	"github.com/spf13/cobra"
)

func topCmd() *cobra.Command {
	var flags filterFlags
	var field string
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the most frequent values of a field in the filtered view",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTop(flags, field, n)
		},
	}
	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVar(&field, "field", "title", "field to count (title, company, location, sector, size)")
	cmd.Flags().IntVarP(&n, "limit", "n", 10, "number of entries")
	return cmd
}

func runTop(flags filterFlags, fieldName string, n int) error {
	field, ok := engine.FieldByName(fieldName)
	if !ok {
		return fmt.Errorf("unknown field %q", fieldName)
	}

	ds, err := loadCleaned(dataPath())
	if err != nil {
		return err
	}

	view := engine.Filter(ds, criteriaFromFlags(ds, flags.sectors, flags.sizes, flags.minRating))
	counts := engine.TopNByCount(view, field, n)

	if len(counts) == 0 {
		fmt.Println(cli.FormatWarning("no matching records"))
		return nil
	}

	var b strings.Builder
	for i, vc := range counts {
		fmt.Fprintf(&b, "%4d  %s", vc.Count, vc.Value)
		if i < len(counts)-1 {
			b.WriteString("\n")
		}
	}
	fmt.Println(cli.RenderBox(fmt.Sprintf("Top %d by %s", len(counts), fieldName), b.String()))
	return nil
}
