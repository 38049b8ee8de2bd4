package dataset

import (
	"sort"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/model"
)

// Dataset is the cleaned working dataset: rows missing a job title, sector,
// or rating are dropped and the survivors enriched with derived salary
// fields. It is immutable once produced and safe to share across readers.
type Dataset struct {
	Records  []model.JobRecord
	RawCount int // source rows before cleaning
}

// Clean drops records missing any of job title, sector, or rating, and
// derives the salary fields for the rest. The drop is permanent for the
// session; order is preserved. A rating is missing only when the cell is
// empty or unparseable; numeric sentinels such as -1 survive.
func Clean(raw *RawDataset) *Dataset {
	records := make([]model.JobRecord, 0, len(raw.Records))

	for _, rr := range raw.Records {
		rating, ok := parseRating(rr.Rating)
		if rr.Title == "" || rr.Sector == "" || !ok {
			continue
		}

		minSalary, maxSalary, avgSalary := ExtractSalary(rr.SalaryEstimate)
		records = append(records, model.JobRecord{
			Title:          rr.Title,
			Company:        rr.Company,
			Location:       rr.Location,
			Sector:         rr.Sector,
			Size:           rr.Size,
			Revenue:        rr.Revenue,
			SalaryEstimate: rr.SalaryEstimate,
			Rating:         rating,
			SalaryMin:      minSalary,
			SalaryMax:      maxSalary,
			AvgSalary:      avgSalary,
		})
	}

	return &Dataset{Records: records, RawCount: len(raw.Records)}
}

func parseRating(s string) (float64, bool) {
	if s == "" {
		return model.Missing(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Missing(), false
	}
	return v, true
}

// DroppedCount is the number of source rows excluded during cleaning.
func (d *Dataset) DroppedCount() int {
	return d.RawCount - len(d.Records)
}

// Sectors returns the distinct sector values, sorted alphabetically.
func (d *Dataset) Sectors() []string {
	return distinct(d.Records, func(j model.JobRecord) string { return j.Sector })
}

// Sizes returns the distinct company-size values, sorted alphabetically.
func (d *Dataset) Sizes() []string {
	return distinct(d.Records, func(j model.JobRecord) string { return j.Size })
}

func distinct(records []model.JobRecord, field func(model.JobRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
