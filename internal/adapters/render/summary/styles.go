package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	authors lipgloss.Style
	header  lipgloss.Style
	heading lipgloss.Style
	body    lipgloss.Style
	section lipgloss.Style
	meta    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		authors: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
