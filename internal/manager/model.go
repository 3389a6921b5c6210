package manager

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/tria/internal/contact"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of cells consumed by left + right (or top +
// bottom) borders.
const borderChrome = 2

// DefaultTitle is the header shown when no title is configured.
const DefaultTitle = "Tria Contact List"

// Model is the root Bubble Tea model for the contact manager.
// It owns the view state; contact data lives in the store and every
// mutation goes through it.
type Model struct {
	store  *contact.Store
	title  string
	logger *zap.Logger

	mode   Mode
	width  int
	height int

	search  textinput.Model
	dir     contact.Direction
	visible []contact.Contact
	cursor  int

	addOpen bool
	add     form

	editingID contact.ID
	edit      form

	alert string
	help  help.Model
}

// ModelOption configures optional Model settings.
type ModelOption func(*Model)

// WithTitle sets the header text.
func WithTitle(title string) ModelOption {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// WithDirection sets the initial sort direction.
func WithDirection(dir contact.Direction) ModelOption {
	return func(m *Model) { m.dir = dir }
}

// WithQuery pre-fills the search input.
func WithQuery(q string) ModelOption {
	return func(m *Model) { m.search.SetValue(q) }
}

// WithLogger sets the logger used for view-level events.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a Model in browse mode over store.
func NewModel(store *contact.Store, opts ...ModelOption) Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "Search by name or number..."
	search.CharLimit = 64
	search.Width = inputWidth

	m := Model{
		store:  store,
		title:  DefaultTitle,
		logger: zap.NewNop(),
		mode:   ModeBrowse,
		search: search,
		dir:    contact.Ascending,
		add:    newForm(),
		edit:   newForm(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.visible = store.View(m.search.Value(), m.dir)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the element that currently has keyboard focus.
func (m Model) Mode() Mode { return m.mode }

// Alert returns the text of the pending alert, or "" when none is shown.
func (m Model) Alert() string { return m.alert }

// EditingID returns the id of the card in Editing state, or 0.
func (m Model) EditingID() contact.ID { return m.editingID }

// Visible returns the contacts currently rendered, in display order.
func (m Model) Visible() []contact.Contact {
	return append([]contact.Contact(nil), m.visible...)
}

// SelectedID returns the id of the card under the cursor, or 0 if the list
// is empty.
func (m Model) SelectedID() contact.ID {
	if c, ok := m.selected(); ok {
		return c.ID
	}
	return 0
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.alert != "" {
			return m.handleAlertKey(msg)
		}
		switch m.mode {
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeAdd:
			return m.handleAddKey(msg)
		case ModeEdit:
			return m.handleEditKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	// Cursor blink and similar messages go to the focused input.
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case ModeSearch:
		m.search, cmd = m.search.Update(msg)
	case ModeAdd:
		m.add, cmd = m.add.Update(msg)
	case ModeEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return m, cmd
}

func (m Model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alert = ""
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if len(m.visible) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.visible) - 1
			}
		}
		return m, nil

	case "down", "j":
		if len(m.visible) > 0 {
			m.cursor++
			if m.cursor >= len(m.visible) {
				m.cursor = 0
			}
		}
		return m, nil

	case "/":
		m.mode = ModeSearch
		return m, m.search.Focus()

	case "s":
		m.dir = m.dir.Toggle()
		m.logger.Debug("sort toggled", zap.Stringer("direction", m.dir))
		return m.refresh(m.SelectedID()), nil

	case "a":
		m.addOpen = true
		m.mode = ModeAdd
		var cmd tea.Cmd
		m.add, cmd = m.add.focusField(fieldName)
		return m, cmd

	case "b":
		m.alert = binText(m.store.BinCount())
		return m, nil

	case "c", "e", "enter":
		return m.startEdit()

	case "d", "x":
		return m.deleteSelected(), nil

	case "esc":
		if m.editingID != 0 {
			m.logger.Debug("edit discarded", zap.Int64("id", int64(m.editingID)))
			m.editingID = 0
			m.edit = newForm()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.mode = ModeBrowse
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m = m.refresh(0)
	}
	return m, cmd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.addOpen = false
		m.add = newForm()
		m.mode = ModeBrowse
		return m, nil
	case "tab", "down":
		m.add, cmd = m.add.next()
		return m, cmd
	case "shift+tab", "up":
		m.add, cmd = m.add.prev()
		return m, cmd
	case "enter":
		return m.submitAdd()
	}

	m.add, cmd = m.add.Update(msg)
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.edit = m.edit.blur()
		m.mode = ModeBrowse
		return m, nil
	case "tab", "down":
		m.edit, cmd = m.edit.next()
		return m, cmd
	case "shift+tab", "up":
		m.edit, cmd = m.edit.prev()
		return m, cmd
	case "enter":
		return m.saveEdit()
	}

	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

// submitAdd validates and stores the add form. On success the form closes
// and the cursor moves to the new card if it is visible.
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	added, err := m.store.Add(m.add.candidate())
	if err != nil {
		m.alert = alertText(err)
		return m, nil
	}
	m.addOpen = false
	m.add = newForm()
	m.mode = ModeBrowse
	return m.refresh(added.ID), nil
}

// startEdit puts the selected card into Editing, or refocuses its form if it
// already is. Editing another card discards the previous edit buffer.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	sel, ok := m.selected()
	if !ok {
		return m, nil
	}
	focus := fieldName
	if sel.ID == m.editingID {
		focus = m.edit.focus
	} else {
		m.editingID = sel.ID
		m.edit = newForm().load(sel.Candidate())
	}
	m.mode = ModeEdit
	var cmd tea.Cmd
	m.edit, cmd = m.edit.focusField(focus)
	return m, cmd
}

// saveEdit validates the edit buffer against every other contact. A rejected
// save leaves the card Editing with its buffer intact.
func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	updated, err := m.store.Edit(m.editingID, m.edit.candidate())
	if err != nil {
		m.alert = alertText(err)
		return m, nil
	}
	m.editingID = 0
	m.edit = newForm()
	m.mode = ModeBrowse
	return m.refresh(updated.ID), nil
}

// deleteSelected moves the selected card to the bin. The Editing card
// cannot be deleted.
func (m Model) deleteSelected() Model {
	sel, ok := m.selected()
	if !ok || sel.ID == m.editingID {
		return m
	}
	m.store.Delete(sel.ID)
	return m.refresh(0)
}

// refresh recomputes the visible cards. The cursor follows keep when it is
// still visible; otherwise it stays at the same index, clamped.
func (m Model) refresh(keep contact.ID) Model {
	m.visible = m.store.View(m.search.Value(), m.dir)
	if keep != 0 {
		for i, c := range m.visible {
			if c.ID == keep {
				m.cursor = i
				return m
			}
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m Model) selected() (contact.Contact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return contact.Contact{}, false
	}
	return m.visible[m.cursor], true
}

// View renders the header, optional add form, card list and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	helpView := m.help.View(HelpBindings(m.mode, m.alert != "", m.editingID != 0))

	if m.alert != "" {
		box := lipgloss.Place(m.width, m.height-helpBarHeight,
			lipgloss.Center, lipgloss.Center, alertView(m.alert))
		return lipgloss.JoinVertical(lipgloss.Left, box, helpView)
	}

	sections := []string{m.viewHeader()}
	if m.addOpen {
		sections = append(sections, m.viewAddForm())
	}
	top := lipgloss.JoinVertical(lipgloss.Left, sections...)
	listHeight := m.height - lipgloss.Height(top) - helpBarHeight

	return lipgloss.JoinVertical(lipgloss.Left, top, m.viewCards(listHeight), helpView)
}

func (m Model) viewHeader() string {
	arrow := "↓"
	if m.dir == contact.Descending {
		arrow = "↑"
	}
	controls := m.search.View() + "   " + fmt.Sprintf("[Sort %s]", arrow)
	status := mutedText.Render(fmt.Sprintf("%d of %d shown · bin %d",
		len(m.visible), m.store.Len(), m.store.BinCount()))
	return lipgloss.JoinVertical(lipgloss.Left, titleText.Render(m.title), controls, status)
}

func (m Model) viewAddForm() string {
	style := FocusedBorder()
	if w := m.width - borderChrome; w > 0 {
		style = style.Width(w)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		nameText.Render("New contact"),
		m.add.View(),
		mutedText.Render("[Enter] Add Contact  [Tab] Next  [Esc] Close"),
	)
	return style.Render(body)
}

func (m Model) viewCards(height int) string {
	if len(m.visible) == 0 {
		return mutedText.Render(emptyState)
	}
	cards := make([]string, len(m.visible))
	for i, c := range m.visible {
		opts := cardOptions{selected: i == m.cursor && m.mode != ModeSearch}
		if c.ID == m.editingID {
			edit := m.edit
			opts.editor = &edit
			opts.focused = m.mode == ModeEdit
		}
		cards[i] = renderCard(c, m.width, opts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, windowCards(cards, m.cursor, height)...)
}
