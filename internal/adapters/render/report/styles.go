package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	tableHeader lipgloss.Style
	cell        lipgloss.Style
	empty       lipgloss.Style
	disconnect  lipgloss.Style
	connect     lipgloss.Style
	reconnect   lipgloss.Style
	banner      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		cell:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:       lipgloss.NewStyle().Faint(true),
		disconnect:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		connect:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		reconnect:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		banner:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
	}
}
