package tui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles for the dashboard.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("45")).
			Bold(true).
			Padding(0, 1)

	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true)

	centerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)
)

// clusterStyles colors points and interpretation lines per cluster id; ids
// wrap around when K exceeds the palette.
var clusterStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("184")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
}

func clusterStyle(id int) lipgloss.Style {
	if id < 0 {
		id = 0
	}
	return clusterStyles[id%len(clusterStyles)]
}
