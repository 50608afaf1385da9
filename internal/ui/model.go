// Package ui is the counter's terminal view: a card with a count badge and
// three controls, driven by Bubble Tea.
package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/patrickmast/terminal-counter/internal/counter"
)

type control struct {
	action counter.Action
	label  string
	icon   string
	ascii  string
}

// controls in focus order, left to right then the footer
var controls = []control{
	{counter.Decrement, "Decrement", "−", "-"},
	{counter.Increment, "Increment", "+", "+"},
	{counter.Reset, "Reset", "↺", "R"},
}

const defaultFocus = 1 // Increment

// Options configures a Model.
type Options struct {
	// ASCII replaces icon glyphs with plain ASCII.
	ASCII bool
	// Logger receives one debug entry per control press. Nil discards.
	Logger log.FieldLogger
}

// Model owns the count for the lifetime of the program.
type Model struct {
	counter  counter.Counter
	focus    int
	width    int
	height   int
	showHelp bool
	ascii    bool

	keys   keyMap
	help   help.Model
	styles styles
	log    log.FieldLogger
}

// New returns a Model at count zero with the Increment control focused.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		l := log.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return Model{
		focus:  defaultFocus,
		ascii:  opts.ASCII,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
		log:    logger,
	}
}

// Count returns the current count.
func (m Model) Count() int { return m.counter.Value() }

// Display returns the badge text, e.g. "Count: 3".
func (m Model) Display() string { return m.counter.String() }

// Focused returns the action of the control that has focus.
func (m Model) Focused() counter.Action { return controls[m.focus].action }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// printable keys read in one batch (held key, fast typing) arrive as one msg
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Paste {
			for _, r := range msg.Runes {
				if cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); cmd != nil {
					return m, cmd
				}
			}
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.showHelp && msg.String() == "esc" {
			m.setHelp(false)
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.setHelp(!m.showHelp)
	case key.Matches(msg, m.keys.Increment):
		m.apply(counter.Increment)
	case key.Matches(msg, m.keys.Decrement):
		m.apply(counter.Decrement)
	case key.Matches(msg, m.keys.Reset):
		m.apply(counter.Reset)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(controls)
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + len(controls) - 1) % len(controls)
	case key.Matches(msg, m.keys.Press):
		m.apply(controls[m.focus].action)
	}
	return nil
}

func (m *Model) setHelp(on bool) {
	m.showHelp = on
	m.help.ShowAll = on
}

func (m *Model) apply(a counter.Action) {
	m.counter.Apply(a)
	m.log.WithFields(log.Fields{
		"action": a.String(),
		"count":  m.counter.Value(),
	}).Debug("control pressed")
}
