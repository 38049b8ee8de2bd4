package engine

import (
	"sort"

	"github.com/jobdeck/jobdeck/internal/model"
)

// Summarize computes the headline metrics for a view. Means over zero
// rows (or rows with no defined value) come out missing, never an error.
func Summarize(view []model.JobRecord) model.Summary {
	ratings := make([]float64, 0, len(view))
	salaries := make([]float64, 0, len(view))
	companies := make(map[string]bool, len(view))

	for _, r := range view {
		ratings = append(ratings, r.Rating)
		salaries = append(salaries, r.AvgSalary)
		if r.Company != "" {
			companies[r.Company] = true
		}
	}

	return model.Summary{
		Count:           len(view),
		MeanRating:      mean(ratings),
		MeanAvgSalary:   mean(salaries),
		UniqueCompanies: len(companies),
	}
}

// mean averages the defined values, skipping missing ones. All missing
// (or none at all) yields the missing sentinel.
func mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if model.IsMissing(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return model.Missing()
	}
	return sum / float64(n)
}

// TopNByCount returns the n most frequent values of field within the view,
// most frequent first. Ties keep the order the values were first seen in.
func TopNByCount(view []model.JobRecord, field Field, n int) []model.ValueCount {
	counts := make(map[string]int, len(view))
	var order []string
	for _, r := range view {
		v := field(r)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	result := make([]model.ValueCount, 0, len(order))
	for _, v := range order {
		result = append(result, model.ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if n >= 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// GroupMeans averages value per distinct group within the view, highest
// mean first. Groups with no members in the view are absent, not zero; a
// group whose every member lacks the value gets a missing mean and sorts
// last.
func GroupMeans(view []model.JobRecord, group Field, value Value) []model.GroupMean {
	values := make(map[string][]float64)
	var order []string
	for _, r := range view {
		g := group(r)
		if g == "" {
			continue
		}
		if _, ok := values[g]; !ok {
			order = append(order, g)
		}
		values[g] = append(values[g], value(r))
	}

	result := make([]model.GroupMean, 0, len(order))
	for _, g := range order {
		result = append(result, model.GroupMean{Group: g, Mean: mean(values[g])})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if model.IsMissing(result[i].Mean) {
			return false
		}
		if model.IsMissing(result[j].Mean) {
			return true
		}
		return result[i].Mean > result[j].Mean
	})
	return result
}

// Paginate returns the 1-indexed pageNumber'th window of pageSize records,
// clamped to what the view actually holds. Out-of-range pages are empty.
func Paginate(view []model.JobRecord, pageSize, pageNumber int) []model.JobRecord {
	if pageSize <= 0 || pageNumber <= 0 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(view) {
		return nil
	}
	end := start + pageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

// TotalPages is ceil(n/pageSize), with zero pages for an empty view.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}
