package manager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/tria/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// runes builds a key message that types s.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// seededStore returns a store holding the default three contacts.
func seededStore(t *testing.T) *contact.Store {
	t.Helper()
	s := contact.NewStore()
	if err := s.Seed([]contact.Contact{
		{ID: 1, Name: "Aisha Kapoor", Phone: "9876543210", Email: "aisha@example.com"},
		{ID: 2, Name: "Rohit Sharma", Phone: "9123456789", Email: "rohit@example.com"},
		{ID: 3, Name: "Maya Rao", Phone: "9987654321", Email: "maya@example.com"},
	}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return s
}

// newSizedModel returns a model over the default contacts sized w x h.
func newSizedModel(t *testing.T, w, h int, opts ...ModelOption) (Model, *contact.Store) {
	t.Helper()
	store := seededStore(t)
	m := NewModel(store, opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model), store
}

// press feeds msgs through Update in order and returns the final model.
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// visibleNames returns the names of the rendered contacts in order.
func visibleNames(m Model) []string {
	var out []string
	for _, c := range m.Visible() {
		out = append(out, c.Name)
	}
	return out
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
