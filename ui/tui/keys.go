package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	DayBack      key.Binding
	DayForward   key.Binding
	MonthBack    key.Binding
	MonthForward key.Binding
	PrevButton   key.Binding
	NextButton   key.Binding
	Press        key.Binding
	FocusText    key.Binding
	Cancel       key.Binding
	Now          key.Binding
	PrevBody     key.Binding
	NextBody     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// slider steps in days
const (
	smallStep = 1
	largeStep = 30
)

func defaultKeyMap() keyMap {
	return keyMap{
		DayBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-1 day"),
		),
		DayForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+1 day"),
		),
		MonthBack: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("⇧←", "-30 days"),
		),
		MonthForward: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("⇧→", "+30 days"),
		),
		PrevButton: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev button"),
		),
		NextButton: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		FocusText: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit date"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "now"),
		),
		PrevBody: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev trace"),
		),
		NextBody: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next trace"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DayBack, k.DayForward, k.FocusText, k.Now, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DayBack, k.DayForward, k.MonthBack, k.MonthForward},
		{k.PrevButton, k.NextButton, k.Press, k.Now},
		{k.FocusText, k.Cancel, k.PrevBody, k.NextBody},
		{k.Help, k.Quit},
	}
}
