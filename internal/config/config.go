// Package config centralizes viper keys and the dataset-derived defaults
// for the dashboard controls.
package config

import (
	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyDataPath   = "data.path"
	KeyCacheDB    = "cache.db"
	KeyServerAddr = "server.addr"
	KeyLogLevel   = "logging.level"
	KeyLogFormat  = "logging.format"
)

// Control defaults and bounds for the dashboard widgets.
const (
	DefaultMinRating = 3.0
	MinRating        = 0.0
	MaxRating        = 5.0
	RatingStep       = 0.5

	DefaultPageSize = 10
	MinPageSize     = 5
	MaxPageSize     = 50

	// DefaultSelection caps how many sector/size options start selected.
	DefaultSelection = 3
)

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault(KeyDataPath, "DataScientist.csv")
	viper.SetDefault(KeyServerAddr, ":8420")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
}

// DefaultSectors is the initial sector selection: the first three options
// alphabetically, or all of them when there are three or fewer. Options
// must already be sorted, as Dataset.Sectors returns them.
func DefaultSectors(options []string) []string {
	if len(options) > DefaultSelection {
		return options[:DefaultSelection]
	}
	return options
}

// DefaultSizes is the initial size selection: everything when there are
// three or fewer options, otherwise the first three.
func DefaultSizes(options []string) []string {
	if len(options) <= DefaultSelection {
		return options
	}
	return options[:DefaultSelection]
}

// DefaultCriteria builds the initial filter criteria for a dataset's
// sector and size options.
func DefaultCriteria(sectors, sizes []string) model.FilterCriteria {
	return model.NewFilterCriteria(DefaultSectors(sectors), DefaultSizes(sizes), DefaultMinRating)
}

// ClampPageSize bounds a rows-per-page request to the widget's range.
func ClampPageSize(n int) int {
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
