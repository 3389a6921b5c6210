// Package manager implements the interactive contact manager: a single
// screen of contact cards with a live search box, a sort toggle, an add
// form, inline editing, and blocking alerts for validation failures and the
// bin count.
package manager

// Mode represents which element has keyboard focus.
type Mode int

const (
	ModeBrowse Mode = iota // Card list has focus.
	ModeSearch             // Search input has focus.
	ModeAdd                // Add form is open and focused.
	ModeEdit               // Inline edit form of the editing card is focused.
)

// String returns a short lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "browse"
	}
}
