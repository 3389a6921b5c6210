package manager

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap for the current focus,
// providing context-aware help bar content. An alert takes precedence.
func HelpBindings(mode Mode, alert, editing bool) help.KeyMap {
	if alert {
		return AlertKeyMap()
	}
	switch mode {
	case ModeSearch:
		return SearchKeyMap()
	case ModeAdd:
		return AddKeyMap()
	case ModeEdit:
		return EditKeyMap()
	default:
		return BrowseKeyMap(editing)
	}
}
