package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	meta      lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	body      lipgloss.Style
	userBody  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		userBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).PaddingLeft(2),
	}
}
