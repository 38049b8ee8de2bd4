package tui

import "github.com/jobdeck/jobdeck/internal/dataset"

// datasetLoadedMsg carries the result of a (re)load, including failures:
// a load error puts the dashboard into its degraded no-data state rather
// than exiting.
type datasetLoadedMsg struct {
	ds  *dataset.Dataset
	err error
}

// exportedMsg reports the outcome of a CSV export.
type exportedMsg struct {
	path string
	err  error
}
