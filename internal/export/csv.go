// Package export serializes filtered views as downloadable CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"
)

// DefaultFileName is the artifact name offered for download.
const DefaultFileName = "data_science_jobs.csv"

// DisplayColumns is the fixed column subset exposed in the table view and
// the export, in display order. No synthetic row-index column is written,
// so an exported file re-parses into the same records it came from.
var DisplayColumns = []string{
	dataset.ColTitle,
	dataset.ColCompany,
	dataset.ColLocation,
	dataset.ColSalaryEstimate,
	dataset.ColRating,
	dataset.ColSector,
	dataset.ColSize,
	dataset.ColRevenue,
}

// Write serializes the view to w as CSV with the display-column header.
func Write(w io.Writer, view []model.JobRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(DisplayColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range view {
		row := []string{
			r.Title,
			r.Company,
			r.Location,
			r.SalaryEstimate,
			strconv.FormatFloat(r.Rating, 'g', -1, 64),
			r.Sector,
			r.Size,
			r.Revenue,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile serializes the view to a CSV file at path.
func WriteFile(path string, view []model.JobRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, view); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
