package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Changed lipgloss.Style
	Same    lipgloss.Style
	Init    lipgloss.Style
	Faint   lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Faint(true),
		Changed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Same:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Init:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Faint:   lipgloss.NewStyle().Faint(true),
	}
}

// plainTheme renders everything unstyled (--plain, or piped output).
func plainTheme() theme {
	s := lipgloss.NewStyle()
	return theme{
		Title:   s,
		Label:   s,
		Changed: s,
		Same:    s,
		Init:    s,
		Faint:   s,
	}
}
