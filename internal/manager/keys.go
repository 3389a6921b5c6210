package manager

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for the card list.
type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Sort   key.Binding
	Add    key.Binding
	Bin    key.Binding
	Change key.Binding
	Delete key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns the browse bindings for the help bar.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Sort, k.Add, k.Change, k.Delete, k.Bin, k.Cancel, k.Quit}
}

// FullHelp returns the browse bindings grouped for expanded help.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Sort},
		{k.Add, k.Change, k.Delete, k.Cancel},
		{k.Bin, k.Quit},
	}
}

// searchKeys holds key bindings while the search input has focus.
type searchKeys struct {
	Done key.Binding
	Quit key.Binding
}

// ShortHelp returns the search bindings for the help bar.
func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Quit}
}

// FullHelp returns the search bindings grouped for expanded help.
func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Done, k.Quit}}
}

// formKeys holds key bindings for the add and inline edit forms.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Close  key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Close}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Close},
	}
}

// alertKeys holds key bindings while an alert is shown.
type alertKeys struct {
	Dismiss key.Binding
}

// ShortHelp returns the alert bindings for the help bar.
func (k alertKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns the alert bindings grouped for expanded help.
func (k alertKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

// BrowseKeyMap returns the key bindings for the card list.
// The cancel binding is only enabled while a card is being edited.
func BrowseKeyMap(editing bool) browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Bin: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bin"),
		),
		Change: key.NewBinding(
			key.WithKeys("c", "e", "enter"),
			key.WithHelp("c", "change"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard edit"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}.withCancel(editing)
}

func (k browseKeys) withCancel(editing bool) browseKeys {
	k.Cancel.SetEnabled(editing)
	return k
}

// SearchKeyMap returns the key bindings for the focused search input.
func SearchKeyMap() searchKeys {
	return searchKeys{
		Done: key.NewBinding(
			key.WithKeys("enter", "esc", "tab"),
			key.WithHelp("enter/esc", "back to list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// AddKeyMap returns the key bindings for the add form.
func AddKeyMap() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add contact"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// EditKeyMap returns the key bindings for the inline edit form.
func EditKeyMap() formKeys {
	km := AddKeyMap()
	km.Submit.SetHelp("enter", "save")
	km.Close.SetHelp("esc", "back to list")
	return km
}

// AlertKeyMap returns the key bindings while an alert is shown.
func AlertKeyMap() alertKeys {
	return alertKeys{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
	}
}
