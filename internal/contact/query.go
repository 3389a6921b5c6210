package contact

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the name sort order.
type Direction int

const (
	Ascending  Direction = iota // A to Z.
	Descending                  // Z to A.
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection parses "asc" or "desc" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("contact: sort direction must be \"asc\" or \"desc\", got %q", s)
	}
}

// Search returns the contacts whose name contains query (case-insensitive)
// or whose phone contains query verbatim. An empty query matches all.
// The input slice is never modified.
func Search(contacts []Contact, query string) []Contact {
	if query == "" {
		return slices.Clone(contacts)
	}
	lower := strings.ToLower(query)
	var out []Contact
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns a copy of contacts ordered by name using English collation.
// Equal names keep their relative order.
func Sort(contacts []Contact, dir Direction) []Contact {
	out := slices.Clone(contacts)
	col := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b Contact) int {
		if dir == Descending {
			return col.CompareString(b.Name, a.Name)
		}
		return col.CompareString(a.Name, b.Name)
	})
	return out
}
