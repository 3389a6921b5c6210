// Package contact holds the in-memory contact list: the active set, the bin
// of deleted contacts, and the validation, search and sort rules applied to
// them.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ID identifies a contact. IDs are assigned by the Store and never reused.
type ID int64

// Contact is a single entry in the active set or the bin.
type Contact struct {
	ID    ID     `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// Candidate is a proposed contact pending validation. It mirrors Contact
// without the ID and backs the add and edit forms.
type Candidate struct {
	Name  string
	Phone string
	Email string
}

// Candidate returns the mutable fields of c as a Candidate.
func (c Contact) Candidate() Candidate {
	return Candidate{Name: c.Name, Phone: c.Phone, Email: c.Email}
}

var (
	// ErrEmptyName indicates a candidate whose name is empty or whitespace.
	ErrEmptyName = errors.New("contact: name is required")
	// ErrInvalidPhone indicates a phone that is not exactly 10 digits.
	ErrInvalidPhone = errors.New("contact: phone must contain exactly 10 digits")
	// ErrDuplicate indicates a name or phone already used by another contact.
	ErrDuplicate = errors.New("contact: same name or phone already exists")
	// ErrNotFound indicates an ID with no matching contact in the active set.
	ErrNotFound = errors.New("contact: not found")
	// ErrDuplicateID indicates a seed that reuses an ID.
	ErrDuplicateID = errors.New("contact: duplicate id")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks c against the add/edit rules: a non-blank name, a
// 10-digit phone, and no case-insensitive name or exact phone collision
// with any contact in existing other than the one identified by exclude.
// Pass 0 as exclude when adding. Checks run in that order and the first
// failure is returned.
func Validate(c Candidate, existing []Contact, exclude ID) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !phonePattern.MatchString(c.Phone) {
		return fmt.Errorf("%w: got %q", ErrInvalidPhone, c.Phone)
	}
	for _, other := range existing {
		if other.ID == exclude && exclude != 0 {
			continue
		}
		if strings.EqualFold(other.Name, c.Name) || other.Phone == c.Phone {
			return fmt.Errorf("%w: conflicts with %q", ErrDuplicate, other.Name)
		}
	}
	return nil
}

// Initials returns the upper-cased first character of every
// whitespace-separated word in name, e.g. "Aisha Kapoor" -> "AK".
// A blank name yields "?".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	var b strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
