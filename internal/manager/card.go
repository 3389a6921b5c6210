package manager

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/tria/internal/contact"
)

// emptyState is shown in place of the card list when nothing matches.
const emptyState = "No contacts found."

// cardOptions selects how a single card is drawn.
type cardOptions struct {
	selected bool
	editor   *form // non-nil while the card is Editing
	focused  bool  // the editor holds keyboard focus
}

// renderCard draws one contact card: avatar badge on the left, details or
// the inline editor on the right, inside a rounded border.
func renderCard(c contact.Contact, width int, opts cardOptions) string {
	badge := AvatarBadge(contact.Initials(c.Name))

	var info string
	if opts.editor != nil {
		hint := "[c] Resume  [Esc] Discard"
		if opts.focused {
			hint = "[Enter] Save  [Esc] Back"
		}
		info = lipgloss.JoinVertical(lipgloss.Left,
			editingLabel,
			opts.editor.View(),
			mutedText.Render(hint),
		)
	} else {
		email := c.Email
		if email == "" {
			email = mutedText.Render("no email")
		}
		info = lipgloss.JoinVertical(lipgloss.Left,
			nameText.Render(c.Name),
			c.Phone,
			email,
		)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, badge, "  ", info)

	style := UnfocusedBorder()
	marker := "  "
	if opts.selected {
		style = FocusedBorder()
		marker = CursorMarker
	}
	if w := width - borderChrome - lipgloss.Width(marker); w > 0 {
		style = style.Width(w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, style.Render(body))
}

// windowCards returns the slice of rendered cards that fits in height lines
// while keeping the card at cursor visible.
func windowCards(cards []string, cursor, height int) []string {
	if len(cards) == 0 || height <= 0 || cursor < 0 || cursor >= len(cards) {
		return cards
	}
	heights := make([]int, len(cards))
	used := 0
	for i, c := range cards {
		heights[i] = lipgloss.Height(c)
		if i <= cursor {
			used += heights[i]
		}
	}

	start := 0
	for used > height && start < cursor {
		used -= heights[start]
		start++
	}
	end := cursor + 1
	for end < len(cards) && used+heights[end] <= height {
		used += heights[end]
		end++
	}
	return cards[start:end]
}
