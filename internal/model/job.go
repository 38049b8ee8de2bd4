// Package model defines the core data types for the job postings pipeline.
package model

import "math"

// Missing is the sentinel for numeric fields with no defined value.
// NaN propagates through arithmetic, so derived values computed from a
// missing operand come out missing without special casing.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// JobRecord represents a single job posting row from the source dataset.
// The three salary fields are derived once during cleaning and never
// mutated afterward.
type JobRecord struct {
	Title          string
	Company        string
	Location       string
	Sector         string
	Size           string
	Revenue        string
	SalaryEstimate string  // raw text, e.g. "$80K-$120K (Glassdoor est.)"
	Rating         float64 // NaN when the source cell is empty or unparseable
	SalaryMin      float64 // first number in the estimate, scaled to dollars
	SalaryMax      float64 // upper bound of the anchored $NK-$NK range
	AvgSalary      float64 // (SalaryMin+SalaryMax)/2, NaN-propagating
}

// HasSalary reports whether the record carries a usable derived salary.
func (j JobRecord) HasSalary() bool {
	return !IsMissing(j.AvgSalary)
}
