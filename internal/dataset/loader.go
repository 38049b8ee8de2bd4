// Package dataset loads, cleans, and caches the job postings source file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jobdeck/jobdeck/internal/common"
)

// Column names required in the source file. Any extra columns (including
// the leading synthetic row-index column) are ignored.
const (
	ColTitle          = "Job Title"
	ColSector         = "Sector"
	ColSize           = "Size"
	ColRating         = "Rating"
	ColRevenue        = "Revenue"
	ColLocation       = "Location"
	ColCompany        = "Company Name"
	ColSalaryEstimate = "Salary Estimate"
)

var requiredColumns = []string{
	ColTitle, ColSector, ColSize, ColRating,
	ColRevenue, ColLocation, ColCompany, ColSalaryEstimate,
}

// RawRecord is one source row before cleaning, every field as read.
type RawRecord struct {
	Title          string
	Company        string
	Location       string
	Sector         string
	Size           string
	Revenue        string
	Rating         string
	SalaryEstimate string
}

// Diagnostics reports what the parser saw, for the record-count widgets.
type Diagnostics struct {
	Rows    int // data rows, excluding the header
	Columns int // columns in the header, including ignored ones
}

// RawDataset is the parsed but uncleaned source file, rows in file order.
type RawDataset struct {
	Records []RawRecord
	Diag    Diagnostics
}

// LoadOptions tunes a single load. Progress, when set, is invoked after
// every parsed row with the running row count.
type LoadOptions struct {
	Progress func(rows int)
}

// Load reads and parses the source CSV at path.
// A missing file yields common.ErrFileNotFound; content that cannot be
// parsed as tabular data (malformed rows, absent required headers) yields
// common.ErrParse. Row and column order are preserved.
func Load(path string) (*RawDataset, error) {
	return LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions is Load with per-load options.
func LoadWithOptions(path string, opts LoadOptions) (*RawDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return parse(f, opts)
}

func parse(r io.Reader, opts LoadOptions) (*RawDataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", common.ErrParse)
		}
		return nil, fmt.Errorf("%w: reading header: %v", common.ErrParse, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %w: %s", common.ErrParse, common.ErrMissingColumns, strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	ds := &RawDataset{Diag: Diagnostics{Columns: len(header)}}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", common.ErrParse, ds.Diag.Rows+2, err)
		}

		ds.Records = append(ds.Records, RawRecord{
			Title:          field(row, ColTitle),
			Company:        field(row, ColCompany),
			Location:       field(row, ColLocation),
			Sector:         field(row, ColSector),
			Size:           field(row, ColSize),
			Revenue:        field(row, ColRevenue),
			Rating:         field(row, ColRating),
			SalaryEstimate: field(row, ColSalaryEstimate),
		})
		ds.Diag.Rows++

		if opts.Progress != nil {
			opts.Progress(ds.Diag.Rows)
		}
	}

	return ds, nil
}
