package tui

import (
	"errors"
	"testing"

	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		RawCount: 3,
		Records: []model.JobRecord{
			{Title: "Data Scientist", Company: "Acme", Sector: "Tech", Size: "Large", Rating: 4.0, AvgSalary: 100000},
			{Title: "ML Engineer", Company: "Initech", Sector: "Tech", Size: "Small", Rating: 2.0, AvgSalary: 70000},
			{Title: "Data Analyst", Company: "Hooli", Sector: "Finance", Size: "Large", Rating: 4.5, AvgSalary: model.Missing()},
		},
	}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := newModel(Config{})
	next, _ := m.Update(datasetLoadedMsg{ds: testDataset()})
	loaded, ok := next.(Model)
	require.True(t, ok)
	return loaded
}

func TestModel_DefaultsAfterLoad(t *testing.T) {
	m := loadedModel(t)

	// Both sectors and both sizes selected (three or fewer of each),
	// min rating 3.0: the 2.0-rated job is filtered out.
	assert.Equal(t, []string{"Finance", "Tech"}, m.sectorOptions)
	assert.True(t, m.selSectors["Tech"])
	assert.True(t, m.selSectors["Finance"])
	assert.InDelta(t, 3.0, m.minRating, 0)
	assert.Len(t, m.view, 2)
	assert.Equal(t, 2, m.summary.Count)
}

func TestModel_ToggleSectorRebuildsView(t *testing.T) {
	m := loadedModel(t)
	m.focus = PaneSectors
	m.cursor = 0 // "Finance"

	m.toggleSelection()
	m.recompute()

	assert.False(t, m.selSectors["Finance"])
	require.Len(t, m.view, 1)
	assert.Equal(t, "Data Scientist", m.view[0].Title)
}

func TestModel_EmptySelectionShowsNoRows(t *testing.T) {
	m := loadedModel(t)
	m.selSectors = map[string]bool{}
	m.recompute()

	assert.Empty(t, m.view)
	assert.Equal(t, 0, m.summary.Count)
	assert.True(t, model.IsMissing(m.summary.MeanAvgSalary))
	assert.Equal(t, 0, m.totalPages())
	assert.Empty(t, m.currentPage)
}

func TestModel_RatingStepBounds(t *testing.T) {
	m := loadedModel(t)

	for i := 0; i < 20; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
		m = next.(Model)
	}
	assert.InDelta(t, 5.0, m.minRating, 0, "rating clamps at the top")

	for i := 0; i < 20; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
		m = next.(Model)
	}
	assert.InDelta(t, 0.0, m.minRating, 0, "rating clamps at the bottom")
}

func TestModel_PageSizeClamped(t *testing.T) {
	m := loadedModel(t)

	m.setPageSize(1)
	assert.Equal(t, 5, m.pageSize)

	m.setPageSize(1000)
	assert.Equal(t, 50, m.pageSize)
}

func TestModel_LoadFailureDegrades(t *testing.T) {
	m := newModel(Config{})
	next, _ := m.Update(datasetLoadedMsg{err: errors.New("file not found: jobs.csv")})
	degraded := next.(Model)

	assert.Error(t, degraded.loadErr)
	assert.Empty(t, degraded.view)

	// The view renders the degraded state instead of panicking.
	degraded.width = 120
	degraded.height = 40
	out := degraded.View()
	assert.Contains(t, out, "could not load dataset")
	assert.Contains(t, out, "jobs.csv")
}

func TestModel_QuitKey(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
