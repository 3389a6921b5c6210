package contact

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Store holds the active contact set and the bin.
// It is not safe for concurrent use; callers confine it to a single
// goroutine (the Bubble Tea update loop).
type Store struct {
	contacts []Contact
	bin      []Contact
	nextID   ID
	logger   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to record successful mutations.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads contacts into an empty active set, applying the same rules as
// Add. Non-zero IDs are kept; zero IDs are assigned. The ID counter moves
// past the highest ID seen. On error the store is left unchanged.
func (s *Store) Seed(contacts []Contact) error {
	loaded := make([]Contact, 0, len(contacts))
	next := s.nextID
	for _, c := range contacts {
		if c.ID > 0 && c.ID >= next {
			next = c.ID + 1
		}
	}

	seen := make(map[ID]bool, len(contacts))
	for i, c := range contacts {
		if err := Validate(c.Candidate(), append(slices.Clone(s.contacts), loaded...), 0); err != nil {
			return fmt.Errorf("seed entry %d (%q): %w", i+1, c.Name, err)
		}
		if c.ID <= 0 {
			c.ID = next
			next++
		}
		if seen[c.ID] || s.indexOf(c.ID) >= 0 {
			return fmt.Errorf("seed entry %d: %w: %d", i+1, ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
		loaded = append(loaded, c)
	}

	s.contacts = append(s.contacts, loaded...)
	s.nextID = next
	s.logger.Info("contacts seeded", zap.Int("count", len(loaded)))
	return nil
}

// Add validates c and appends it to the active set with a fresh ID.
// On error nothing changes.
func (s *Store) Add(c Candidate) (Contact, error) {
	if err := Validate(c, s.contacts, 0); err != nil {
		return Contact{}, err
	}
	added := Contact{ID: s.nextID, Name: c.Name, Phone: c.Phone, Email: c.Email}
	s.nextID++
	s.contacts = append(s.contacts, added)
	s.logger.Debug("contact added", zap.Int64("id", int64(added.ID)))
	return added, nil
}

// Edit validates c against every contact except id and, if it passes,
// replaces the name, phone and email of contact id in place.
func (s *Store) Edit(id ID, c Candidate) (Contact, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err := Validate(c, s.contacts, id); err != nil {
		return Contact{}, err
	}
	s.contacts[i].Name = c.Name
	s.contacts[i].Phone = c.Phone
	s.contacts[i].Email = c.Email
	s.logger.Debug("contact edited", zap.Int64("id", int64(id)))
	return s.contacts[i], nil
}

// Delete moves contact id from the active set to the bin.
// It reports false, and does nothing, when id is not in the active set.
func (s *Store) Delete(id ID) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	removed := s.contacts[i]
	s.contacts = slices.Delete(s.contacts, i, i+1)
	s.bin = append(s.bin, removed)
	s.logger.Debug("contact binned", zap.Int64("id", int64(id)), zap.Int("bin", len(s.bin)))
	return removed, true
}

// Get returns the active contact with the given ID.
func (s *Store) Get(id ID) (Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// List returns a copy of the active set in insertion order.
func (s *Store) List() []Contact {
	return slices.Clone(s.contacts)
}

// Len returns the size of the active set.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Bin returns a copy of the deleted contacts, oldest first.
func (s *Store) Bin() []Contact {
	return slices.Clone(s.bin)
}

// BinCount returns the number of deleted contacts.
func (s *Store) BinCount() int {
	return len(s.bin)
}

// Search returns the active contacts matching query. See Search.
func (s *Store) Search(query string) []Contact {
	return Search(s.contacts, query)
}

// View returns the active contacts matching query, sorted by name in dir.
// This is the sequence the UI renders.
func (s *Store) View(query string, dir Direction) []Contact {
	return Sort(Search(s.contacts, query), dir)
}

func (s *Store) indexOf(id ID) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return c.ID == id })
}
