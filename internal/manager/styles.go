package manager

import "github.com/charmbracelet/lipgloss"

// CursorMarker is the prefix shown beside the selected card.
const CursorMarker = "▸ "

// Avatar background colors, picked per contact from its initials.
var avatarColors = [6]lipgloss.AdaptiveColor{
	{Light: "4", Dark: "12"},    // blue
	{Light: "5", Dark: "13"},    // magenta
	{Light: "6", Dark: "14"},    // cyan
	{Light: "2", Dark: "10"},    // green
	{Light: "208", Dark: "208"}, // orange
	{Light: "1", Dark: "9"},     // red
}

var (
	titleText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	nameText = lipgloss.NewStyle().Bold(true)

	editingLabel = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"}).
			Render("editing")
)

// AvatarBadge returns the initials rendered as a colored badge like " AK ".
func AvatarBadge(initials string) string {
	var sum int
	for _, r := range initials {
		sum += int(r)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("15")).
		Background(avatarColors[sum%len(avatarColors)]).
		Render(initials)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// AlertBorder returns the double-bordered style used for blocking alerts.
func AlertBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}).
		Padding(1, 3)
}
