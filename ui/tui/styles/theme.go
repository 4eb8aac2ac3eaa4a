package styles

import "github.com/charmbracelet/lipgloss"

var (
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Warning   = lipgloss.Color("196")

	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BrandColor)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Foreground(lipgloss.Color("#AAA")).
			Background(BaseColor)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)
)
