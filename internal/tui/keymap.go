package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	NextPane key.Binding
	PrevPane key.Binding

	// Filter controls
	Toggle       key.Binding
	RatingUp     key.Binding
	RatingDown   key.Binding
	RowsMore     key.Binding
	RowsFewer    key.Binding
	ResetFilters key.Binding

	// Actions
	Export key.Binding
	Reload key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next page"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle selection"),
		),
		RatingUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise min rating"),
		),
		RatingDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "lower min rating"),
		),
		RowsMore: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more rows per page"),
		),
		RowsFewer: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer rows per page"),
		),
		ResetFilters: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset filters"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload data"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
