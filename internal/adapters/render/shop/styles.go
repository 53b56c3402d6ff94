package shop

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	detail   lipgloss.Style
	price    lipgloss.Style
	strike   lipgloss.Style
	discount lipgloss.Style
	total    lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		strike:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		discount: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
