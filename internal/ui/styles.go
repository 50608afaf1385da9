package ui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 56

var (
	accent  = lipgloss.Color("4")
	muted   = lipgloss.Color("8")
	surface = lipgloss.Color("236")
	bright  = lipgloss.Color("15")
)

type styles struct {
	card        lipgloss.Style
	title       lipgloss.Style
	description lipgloss.Style
	badge       lipgloss.Style

	// buttons, by variant
	outline lipgloss.Style
	primary lipgloss.Style
	ghost   lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return styles{
		card: lipgloss.NewStyle().
			Width(cardWidth).
			Padding(1, 2).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		description: lipgloss.NewStyle().
			Foreground(muted),
		badge: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(bright).
			Background(surface),
		outline: button,
		primary: button.
			Bold(true).
			Foreground(bright).
			Background(accent),
		ghost: button.
			Padding(0, 1).
			Border(lipgloss.HiddenBorder()).
			Foreground(muted),
	}
}

// focused marks the control that enter/space will press.
func focused(s lipgloss.Style) lipgloss.Style {
	return s.
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Underline(true)
}
