package tui

import (
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/cli"
	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(cli.PrimaryColor)

	metricLabelStyle = cli.SubtleStyle
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)

	selectedMark   = cli.SuccessStyle.Render("[x]")
	unselectedMark = cli.SubtleStyle.Render("[ ]")
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Data Science Jobs Dashboard"))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(cli.FormatError("could not load dataset: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render("fix the source file and press r to reload, q to quit"))
		b.WriteString("\n")
		return b.String()
	}
	if m.ds == nil {
		b.WriteString(cli.SubtleStyle.Render("loading dataset..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.metricsView())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebarView(),
		m.tableView(),
		m.breakdownView(),
	)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) metricsView() string {
	metric := func(label, value string) string {
		return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			metricLabelStyle.Render(label),
			metricValueStyle.Render(value),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Total Positions", fmt.Sprintf("%d", m.summary.Count)),
		metric("Avg Salary", formatSalary(m.summary.MeanAvgSalary)),
		metric("Avg Rating", formatRating(m.summary.MeanRating)),
		metric("Unique Companies", fmt.Sprintf("%d", m.summary.UniqueCompanies)),
		metric("Records in Dataset", fmt.Sprintf("%d", len(m.ds.Records))),
	)
}

func (m Model) sidebarView() string {
	var b strings.Builder

	b.WriteString(cli.TableHeaderStyle.Render("Sectors"))
	b.WriteString("\n")
	b.WriteString(m.optionListView(PaneSectors, m.sectorOptions, m.selSectors))
	b.WriteString("\n")

	b.WriteString(cli.TableHeaderStyle.Render("Company Size"))
	b.WriteString("\n")
	b.WriteString(m.optionListView(PaneSizes, m.sizeOptions, m.selSizes))
	b.WriteString("\n")

	b.WriteString(cli.TableHeaderStyle.Render("Min Rating"))
	b.WriteString("\n")
	rating := fmt.Sprintf("%.1f ★", m.minRating)
	if m.focus == PaneRating {
		rating += cli.SubtleStyle.Render("  (+/- to adjust)")
	}
	b.WriteString(rating)

	style := paneStyle
	if m.focus == PaneSectors || m.focus == PaneSizes || m.focus == PaneRating {
		style = focusedPaneStyle
	}
	return style.Width(30).Render(b.String())
}

func (m Model) optionListView(pane Pane, options []string, selected map[string]bool) string {
	if len(options) == 0 {
		return cli.SubtleStyle.Render("  (none)")
	}

	var b strings.Builder
	for i, opt := range options {
		mark := unselectedMark
		if selected[opt] {
			mark = selectedMark
		}
		cursor := "  "
		if m.focus == pane && m.cursor == i {
			cursor = cli.TitleStyle.UnsetMargins().Render("> ")
		}
		b.WriteString(cursor + mark + " " + truncate(opt, 22))
		if i < len(options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) tableView() string {
	var b strings.Builder

	header := fmt.Sprintf("%-32s %-22s %-18s %-6s", "Job Title", "Company", "Location", "Rating")
	b.WriteString(cli.TableHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(m.currentPage) == 0 {
		b.WriteString(cli.SubtleStyle.Render("no jobs match the current filters"))
	}
	for i, r := range m.currentPage {
		row := fmt.Sprintf("%-32s %-22s %-18s %-6s",
			truncate(r.Title, 32),
			truncate(r.Company, 22),
			truncate(r.Location, 18),
			formatRating(r.Rating),
		)
		b.WriteString(cli.TableCellStyle.Render(row))
		if i < len(m.currentPage)-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if m.focus == PaneTable {
		style = focusedPaneStyle
	}
	return style.Render(b.String())
}

func (m Model) breakdownView() string {
	var b strings.Builder

	b.WriteString(cli.TableHeaderStyle.Render("Top Job Titles"))
	b.WriteString("\n")
	if len(m.topTitles) == 0 {
		b.WriteString(cli.SubtleStyle.Render("(no data)"))
	}
	for _, vc := range m.topTitles {
		b.WriteString(fmt.Sprintf("%3d  %s\n", vc.Count, truncate(vc.Value, 28)))
	}
	b.WriteString("\n")

	b.WriteString(cli.TableHeaderStyle.Render("Jobs by Sector"))
	b.WriteString("\n")
	if len(m.sectorDist) == 0 {
		b.WriteString(cli.SubtleStyle.Render("(no data)"))
	}
	for _, vc := range m.sectorDist {
		b.WriteString(fmt.Sprintf("%3d  %s\n", vc.Count, truncate(vc.Value, 28)))
	}
	b.WriteString("\n")

	b.WriteString(cli.TableHeaderStyle.Render("Avg Salary by Size"))
	b.WriteString("\n")
	if len(m.sizeSalary) == 0 {
		b.WriteString(cli.SubtleStyle.Render("(no data)"))
	}
	for _, gm := range m.sizeSalary {
		b.WriteString(fmt.Sprintf("%-22s %s\n", truncate(gm.Group, 22), formatSalary(gm.Mean)))
	}

	return paneStyle.Width(40).Render(b.String())
}

func (m Model) footerView() string {
	page := m.pager.Page + 1
	total := m.totalPages()
	if total == 0 {
		page = 0
	}

	parts := []string{
		fmt.Sprintf("page %d of %d", page, total),
		fmt.Sprintf("%d rows/page", m.pageSize),
		fmt.Sprintf("showing %d of %d jobs", len(m.currentPage), len(m.view)),
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	footer := cli.SubtleStyle.Render(strings.Join(parts, "  ·  "))
	if m.showHelp {
		footer += "\n" + cli.SubtleStyle.Render(
			"tab panes · space toggle · +/- rating · [/] rows · ←/→ page · e export · r reload · q quit")
	}
	return footer
}

func formatRating(v float64) string {
	if model.IsMissing(v) {
		return "—"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatSalary(v float64) string {
	if model.IsMissing(v) {
		return "—"
	}
	return fmt.Sprintf("$%.0fK", v/1000)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
