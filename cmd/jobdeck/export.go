package main

import (
	"fmt"

	"github.com/jobdeck/jobdeck/internal/cli"
	"github.com/jobdeck/jobdeck/internal/engine"
	"github.com/jobdeck/jobdeck/internal/export"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var flags filterFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered view to a CSV file",
		Long: `Write the records matching the current filters to a CSV file with the
display columns (Job Title, Company Name, Location, Salary Estimate,
Rating, Sector, Size, Revenue) and no row-index column.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(flags, out)
		},
	}
	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFileName, "output file")
	return cmd
}

func runExport(flags filterFlags, out string) error {
	ds, err := loadCleaned(dataPath())
	if err != nil {
		return err
	}

	view := engine.Filter(ds, criteriaFromFlags(ds, flags.sectors, flags.sizes, flags.minRating))
	if err := export.WriteFile(out, view); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("wrote %d records to %s", len(view), out)))
	return nil
}
