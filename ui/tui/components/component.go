package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget owned by the main model. The model forwards the
// messages it cares about and embeds View() in its layout.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

var (
	_ Component = (*DialWidget)(nil)
	_ Component = (*TraceWidget)(nil)
)
