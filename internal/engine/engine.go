// Package engine applies filter criteria to the cleaned dataset and
// computes the aggregate views the presentation layer consumes. Every
// function is pure: inputs are never mutated and each call produces a
// fresh slice, so views can be rebuilt wholesale on every interaction.
package engine

import (
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"
)

// Filter returns the records matching criteria, preserving their relative
// order in the dataset. An empty sector or size selection yields zero
// matches; an empty result is valid and flows through every aggregation.
func Filter(ds *dataset.Dataset, criteria model.FilterCriteria) []model.JobRecord {
	var view []model.JobRecord
	for _, r := range ds.Records {
		if criteria.Matches(r) {
			view = append(view, r)
		}
	}
	return view
}

// Field selects a string attribute of a record for grouping and counting.
type Field func(model.JobRecord) string

// Selectable fields.
var (
	ByTitle    Field = func(j model.JobRecord) string { return j.Title }
	ByCompany  Field = func(j model.JobRecord) string { return j.Company }
	ByLocation Field = func(j model.JobRecord) string { return j.Location }
	BySector   Field = func(j model.JobRecord) string { return j.Sector }
	BySize     Field = func(j model.JobRecord) string { return j.Size }
)

// FieldByName maps an external field name (request parameter, CLI flag)
// to its selector.
func FieldByName(name string) (Field, bool) {
	switch name {
	case "title":
		return ByTitle, true
	case "company":
		return ByCompany, true
	case "location":
		return ByLocation, true
	case "sector":
		return BySector, true
	case "size":
		return BySize, true
	default:
		return nil, false
	}
}

// Value selects a numeric attribute of a record for averaging.
type Value func(model.JobRecord) float64

// Averageable values.
var (
	AvgSalaryValue Value = func(j model.JobRecord) float64 { return j.AvgSalary }
	RatingValue    Value = func(j model.JobRecord) float64 { return j.Rating }
)

// ValueByName maps an external value name to its selector.
func ValueByName(name string) (Value, bool) {
	switch name {
	case "avg_salary":
		return AvgSalaryValue, true
	case "rating":
		return RatingValue, true
	default:
		return nil, false
	}
}
