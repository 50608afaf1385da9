package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickmast/terminal-counter/internal/counter"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update in order, as the Bubble Tea loop would.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = msg
	}
	return msgs
}

func TestInitialView(t *testing.T) {
	m := New(Options{})

	assert.Nil(t, m.Init())
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, counter.Increment, m.Focused())

	v := m.View()
	assert.Contains(t, v, "Counter App")
	assert.Contains(t, v, "Count: 0")
	assert.Contains(t, v, "Decrement")
	assert.Contains(t, v, "Increment")
	assert.Contains(t, v, "Reset")
}

func TestIncrementThreeTimes(t *testing.T) {
	m := send(t, New(Options{}), runes("+"), runes("+"), tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 3, m.Count())
	assert.Contains(t, m.View(), "Count: 3")
}

func TestBatchedRunesEachCount(t *testing.T) {
	m := send(t, New(Options{}), runes("+++"))
	assert.Equal(t, 3, m.Count())
	assert.Contains(t, m.View(), "Count: 3")

	m = send(t, m, runes("-+--"), runes("r+"))
	assert.Equal(t, 1, m.Count())
}

func TestBatchedRunesStopAtQuit(t *testing.T) {
	next, cmd := New(Options{}).Update(runes("++q+"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 2, next.(Model).Count())
}

func TestPastedRunesIgnored(t *testing.T) {
	m := send(t, New(Options{}), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+++"), Paste: true})
	assert.Equal(t, 0, m.Count())
}

func TestDecrementBelowZero(t *testing.T) {
	m := send(t, New(Options{}), runes("-"))

	assert.Equal(t, -1, m.Count())
	assert.Contains(t, m.View(), "Count: -1")
	assert.Equal(t, "Count: -1", m.Display())
}

func TestResetAfterFive(t *testing.T) {
	m := send(t, New(Options{}), repeat(runes("k"), 5)...)
	require.Equal(t, 5, m.Count())

	m = send(t, m, runes("r"))
	assert.Equal(t, 0, m.Count())
	assert.Contains(t, m.View(), "Count: 0")

	m = send(t, m, runes("0"))
	assert.Equal(t, 0, m.Count())
}

func TestTenUpThreeDown(t *testing.T) {
	msgs := append(repeat(runes("+"), 10), repeat(tea.KeyMsg{Type: tea.KeyDown}, 3)...)
	m := send(t, New(Options{}), msgs...)

	assert.Equal(t, 7, m.Count())
}

func TestFocusWraps(t *testing.T) {
	tab := tea.KeyMsg{Type: tea.KeyTab}
	back := tea.KeyMsg{Type: tea.KeyShiftTab}

	m := New(Options{})
	m = send(t, m, tab)
	assert.Equal(t, counter.Reset, m.Focused())
	m = send(t, m, tab)
	assert.Equal(t, counter.Decrement, m.Focused())
	m = send(t, m, back)
	assert.Equal(t, counter.Reset, m.Focused())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, counter.Decrement, m.Focused())
}

func TestPressFocusedControl(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m := send(t, New(Options{}), enter, space)
	assert.Equal(t, 2, m.Count())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, enter, enter, enter)
	assert.Equal(t, -1, m.Count())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, enter)
	assert.Equal(t, counter.Reset, m.Focused())
	assert.Equal(t, 0, m.Count())
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := send(t, New(Options{}), runes("+"))

		next, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, 1, next.(Model).Count())
	}
}

func TestHelpToggle(t *testing.T) {
	m := New(Options{})
	short := m.View()
	assert.NotContains(t, short, "previous control")

	m = send(t, m, runes("?"))
	assert.Contains(t, m.View(), "previous control")

	// esc closes help before it quits
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.NotContains(t, next.(Model).View(), "previous control")
}

func TestWindowSizeCentres(t *testing.T) {
	m := send(t, New(Options{}), tea.WindowSizeMsg{Width: 100, Height: 40})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 40)
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 100)
	}
}

func TestASCIIIcons(t *testing.T) {
	v := New(Options{ASCII: true}).View()
	assert.Contains(t, v, "- Decrement")
	assert.Contains(t, v, "R Reset")
	assert.NotContains(t, v, "↺")

	v = New(Options{}).View()
	assert.Contains(t, v, "↺ Reset")
}

func TestPressesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(&log.JSONFormatter{})

	send(t, New(Options{Logger: logger}), runes("+"), runes("r"))

	out := buf.String()
	assert.Contains(t, out, `"action":"increment"`)
	assert.Contains(t, out, `"action":"reset"`)
	assert.Contains(t, out, `"count":0`)
}
