package model

// Summary holds the headline metrics for a filtered view.
// Means over zero rows are reported as the missing sentinel, not an error.
type Summary struct {
	Count           int
	MeanRating      float64
	MeanAvgSalary   float64
	UniqueCompanies int
}

// ValueCount is one entry of a top-N frequency breakdown.
type ValueCount struct {
	Value string
	Count int
}

// GroupMean is one entry of a grouped-average breakdown, ordered for
// display with the highest mean first.
type GroupMean struct {
	Group string
	Mean  float64
}
