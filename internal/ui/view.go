package ui

import "github.com/charmbracelet/lipgloss"

const (
	title       = "Counter App"
	description = "A simple counter demo using terminal UI components"
)

func (m Model) View() string {
	s := m.styles

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.button(0, s.outline),
		"  ",
		m.button(1, s.primary),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		s.title.Render(title),
		s.description.Render(description),
		"",
		s.badge.Render(m.counter.String()),
		"",
		row,
		m.button(2, s.ghost),
	)

	view := lipgloss.JoinVertical(lipgloss.Center,
		s.card.Render(body),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) button(i int, style lipgloss.Style) string {
	c := controls[i]
	icon := c.icon
	if m.ascii {
		icon = c.ascii
	}
	if i == m.focus {
		style = focused(style)
	}
	return style.Render(icon + " " + c.label)
}
