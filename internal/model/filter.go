package model

// FilterCriteria describes one interaction's worth of filter state.
// It is rebuilt from the UI (or request parameters) on every change and
// never persisted.
type FilterCriteria struct {
	Sectors   map[string]bool
	Sizes     map[string]bool
	MinRating float64
}

// NewFilterCriteria builds criteria from selected sector and size values
// and an inclusive minimum rating.
func NewFilterCriteria(sectors, sizes []string, minRating float64) FilterCriteria {
	c := FilterCriteria{
		Sectors:   make(map[string]bool, len(sectors)),
		Sizes:     make(map[string]bool, len(sizes)),
		MinRating: minRating,
	}
	for _, s := range sectors {
		c.Sectors[s] = true
	}
	for _, s := range sizes {
		c.Sizes[s] = true
	}
	return c
}

// Matches reports whether a record satisfies the criteria. An empty sector
// or size selection matches nothing, mirroring a multi-select control with
// everything deselected.
func (c FilterCriteria) Matches(j JobRecord) bool {
	if !c.Sectors[j.Sector] {
		return false
	}
	if !c.Sizes[j.Size] {
		return false
	}
	return j.Rating >= c.MinRating
}
