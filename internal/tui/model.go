// Package tui renders the interactive dashboard: filter panes on the
// left, headline metrics and breakdowns up top, and a paginated table of
// the filtered records. Every interaction rebuilds the filtered view from
// the cleaned dataset through the engine; nothing is updated in place.
package tui

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/engine"
	"github.com/jobdeck/jobdeck/internal/export"
	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane identifies the focusable regions of the dashboard.
type Pane int

const (
	PaneSectors Pane = iota
	PaneSizes
	PaneRating
	PaneTable
	paneCount
)

// Config holds what the dashboard needs to run.
type Config struct {
	// Provider yields the cleaned dataset; a dataset.Cache bound to the
	// source path makes reloads of an unchanged file free.
	Provider func(ctx context.Context) (*dataset.Dataset, error)
	// ExportPath is where the export keybinding writes the CSV artifact.
	// Defaults to export.DefaultFileName in the working directory.
	ExportPath string
	PageSize   int
}

// Model holds the dashboard state.
type Model struct {
	cfg     Config
	ds      *dataset.Dataset
	loadErr error

	// Filter controls.
	sectorOptions []string
	sizeOptions   []string
	selSectors    map[string]bool
	selSizes      map[string]bool
	minRating     float64

	// Derived views, rebuilt on every filter change.
	view        []model.JobRecord
	summary     model.Summary
	topTitles   []model.ValueCount
	sectorDist  []model.ValueCount
	sizeSalary  []model.GroupMean
	currentPage []model.JobRecord

	pager    paginator.Model
	pageSize int

	keymap   KeyMap
	focus    Pane
	cursor   int
	status   string
	width    int
	height   int
	showHelp bool
	quitting bool
}

func newModel(cfg Config) Model {
	if cfg.PageSize == 0 {
		cfg.PageSize = config.DefaultPageSize
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = export.DefaultFileName
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = cfg.PageSize

	return Model{
		cfg:        cfg,
		selSectors: make(map[string]bool),
		selSizes:   make(map[string]bool),
		minRating:  config.DefaultMinRating,
		pageSize:   cfg.PageSize,
		pager:      p,
		keymap:     DefaultKeyMap(),
	}
}

// Init kicks off the initial dataset load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ds, err := m.cfg.Provider(context.Background())
		return datasetLoadedMsg{ds: ds, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	view := m.view
	path := m.cfg.ExportPath
	return func() tea.Msg {
		return exportedMsg{path: path, err: export.WriteFile(path, view)}
	}
}

// Update handles messages and keeps the derived views consistent.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetLoadedMsg:
		return m.onDatasetLoaded(msg), nil

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onDatasetLoaded(msg datasetLoadedMsg) Model {
	if msg.err != nil {
		m.ds = nil
		m.loadErr = msg.err
		m.resetDerived()
		return m
	}

	m.ds = msg.ds
	m.loadErr = nil
	m.sectorOptions = msg.ds.Sectors()
	m.sizeOptions = msg.ds.Sizes()

	// Initial widget state: first three sectors alphabetically, sizes per
	// the same rule, minimum rating 3.0.
	m.selSectors = make(map[string]bool)
	for _, s := range config.DefaultSectors(m.sectorOptions) {
		m.selSectors[s] = true
	}
	m.selSizes = make(map[string]bool)
	for _, s := range config.DefaultSizes(m.sizeOptions) {
		m.selSizes[s] = true
	}
	m.minRating = config.DefaultMinRating

	m.recompute()
	return m
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keymap
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, k.Reload):
		m.status = "reloading..."
		return m, m.loadCmd()

	case key.Matches(msg, k.Export):
		if m.ds == nil {
			m.status = "nothing to export"
			return m, nil
		}
		return m, m.exportCmd()

	case key.Matches(msg, k.NextPane):
		m.focus = (m.focus + 1) % paneCount
		m.cursor = 0
		return m, nil

	case key.Matches(msg, k.PrevPane):
		m.focus = (m.focus + paneCount - 1) % paneCount
		m.cursor = 0
		return m, nil

	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, k.Down):
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, k.Toggle):
		m.toggleSelection()
		m.recompute()
		return m, nil

	case key.Matches(msg, k.RatingUp):
		if m.minRating+config.RatingStep <= config.MaxRating {
			m.minRating += config.RatingStep
			m.recompute()
		}
		return m, nil

	case key.Matches(msg, k.RatingDown):
		if m.minRating-config.RatingStep >= config.MinRating {
			m.minRating -= config.RatingStep
			m.recompute()
		}
		return m, nil

	case key.Matches(msg, k.RowsMore):
		m.setPageSize(m.pageSize + config.MinPageSize)
		return m, nil

	case key.Matches(msg, k.RowsFewer):
		m.setPageSize(m.pageSize - config.MinPageSize)
		return m, nil

	case key.Matches(msg, k.ResetFilters):
		if m.ds != nil {
			return m.onDatasetLoaded(datasetLoadedMsg{ds: m.ds}), nil
		}
		return m, nil

	case key.Matches(msg, k.NextPage):
		m.pager.NextPage()
		m.slicePage()
		return m, nil

	case key.Matches(msg, k.PrevPage):
		m.pager.PrevPage()
		m.slicePage()
		return m, nil
	}

	return m, nil
}

func (m *Model) cursorMax() int {
	switch m.focus {
	case PaneSectors:
		return len(m.sectorOptions) - 1
	case PaneSizes:
		return len(m.sizeOptions) - 1
	default:
		return 0
	}
}

func (m *Model) toggleSelection() {
	switch m.focus {
	case PaneSectors:
		if m.cursor < len(m.sectorOptions) {
			s := m.sectorOptions[m.cursor]
			m.selSectors[s] = !m.selSectors[s]
		}
	case PaneSizes:
		if m.cursor < len(m.sizeOptions) {
			s := m.sizeOptions[m.cursor]
			m.selSizes[s] = !m.selSizes[s]
		}
	}
}

func (m *Model) setPageSize(n int) {
	m.pageSize = config.ClampPageSize(n)
	m.pager.PerPage = m.pageSize
	m.pager.Page = 0
	m.pager.SetTotalPages(len(m.view))
	m.slicePage()
}

// criteria assembles the current filter state.
func (m *Model) criteria() model.FilterCriteria {
	c := model.FilterCriteria{
		Sectors:   make(map[string]bool),
		Sizes:     make(map[string]bool),
		MinRating: m.minRating,
	}
	for s, on := range m.selSectors {
		if on {
			c.Sectors[s] = true
		}
	}
	for s, on := range m.selSizes {
		if on {
			c.Sizes[s] = true
		}
	}
	return c
}

// recompute reruns the full filter and aggregation pipeline. The cleaned
// dataset is read-only; every derived view is rebuilt from scratch.
func (m *Model) recompute() {
	if m.ds == nil {
		m.resetDerived()
		return
	}

	m.view = engine.Filter(m.ds, m.criteria())
	m.summary = engine.Summarize(m.view)
	m.topTitles = engine.TopNByCount(m.view, engine.ByTitle, 10)
	m.sectorDist = engine.TopNByCount(m.view, engine.BySector, 8)
	m.sizeSalary = engine.GroupMeans(m.view, engine.BySize, engine.AvgSalaryValue)

	m.pager.Page = 0
	m.pager.SetTotalPages(len(m.view))
	m.slicePage()
}

func (m *Model) resetDerived() {
	m.view = nil
	m.summary = model.Summary{}
	m.topTitles = nil
	m.sectorDist = nil
	m.sizeSalary = nil
	m.currentPage = nil
	m.pager.Page = 0
	m.pager.SetTotalPages(0)
}

func (m *Model) slicePage() {
	m.currentPage = engine.Paginate(m.view, m.pageSize, m.pager.Page+1)
}

// totalPages is what the footer shows; zero for an empty view.
func (m *Model) totalPages() int {
	return engine.TotalPages(len(m.view), m.pageSize)
}
