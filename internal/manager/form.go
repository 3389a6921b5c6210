package manager

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/tria/internal/contact"
)

// inputWidth is the visible width of every text input.
const inputWidth = 32

const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldCount
)

// form is the three-field contact form shared by the add panel and the
// inline editor. Values are copied on update like any Bubble Tea model.
type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm() form {
	var f form
	for i, field := range [fieldCount]struct{ prompt, placeholder string }{
		fieldName:  {"Name:  ", "Full name"},
		fieldPhone: {"Phone: ", "10-digit phone"},
		fieldEmail: {"Email: ", "Email (optional)"},
	} {
		ti := textinput.New()
		ti.Prompt = field.prompt
		ti.Placeholder = field.placeholder
		ti.Width = inputWidth
		ti.CharLimit = 0 // unlimited; seeded values must load whole
		f.inputs[i] = ti
	}
	return f
}

// candidate returns the form values exactly as typed; the store validates them.
func (f form) candidate() contact.Candidate {
	return contact.Candidate{
		Name:  f.inputs[fieldName].Value(),
		Phone: f.inputs[fieldPhone].Value(),
		Email: f.inputs[fieldEmail].Value(),
	}
}

// load fills the inputs from an existing contact.
func (f form) load(c contact.Candidate) form {
	f.inputs[fieldName].SetValue(c.Name)
	f.inputs[fieldPhone].SetValue(c.Phone)
	f.inputs[fieldEmail].SetValue(c.Email)
	return f
}

// focusField focuses input i and blurs the others.
func (f form) focusField(i int) (form, tea.Cmd) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	return f, f.inputs[i].Focus()
}

func (f form) next() (form, tea.Cmd) {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f form) prev() (form, tea.Cmd) {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// blur removes focus from every input, keeping the values.
func (f form) blur() form {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f
}

// Update forwards msg to the focused input.
func (f form) Update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the inputs one per line.
func (f form) View() string {
	lines := make([]string, 0, fieldCount)
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n")
}
