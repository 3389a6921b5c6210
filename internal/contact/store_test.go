package contact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// sampleContacts returns the three contacts the embedded seed ships with.
func sampleContacts() []Contact {
	return []Contact{
		{ID: 1, Name: "Aisha Kapoor", Phone: "9876543210", Email: "aisha@example.com"},
		{ID: 2, Name: "Rohit Sharma", Phone: "9123456789", Email: "rohit@example.com"},
		{ID: 3, Name: "Maya Rao", Phone: "9987654321", Email: "maya@example.com"},
	}
}

// seededStore returns a Store holding sampleContacts.
func seededStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := NewStore(opts...)
	if err := s.Seed(sampleContacts()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return s
}

// snapshot captures the full observable state of a store.
type snapshot struct {
	Active []Contact
	Bin    []Contact
}

func snap(s *Store) snapshot {
	return snapshot{Active: s.List(), Bin: s.Bin()}
}

func TestStore_AddValidUnique(t *testing.T) {
	// Given: the default three contacts
	s := seededStore(t)

	// When: a valid, unique candidate is added
	got, err := s.Add(Candidate{Name: "Zara Khan", Phone: "9000000001", Email: "z@x.com"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Then: the active set grows by one and the record is retrievable by ID
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	stored, ok := s.Get(got.ID)
	if !ok {
		t.Fatalf("Get(%d) not found", got.ID)
	}
	if diff := cmp.Diff(got, stored); diff != "" {
		t.Errorf("Get() mismatch (-added +stored):\n%s", diff)
	}

	// And: filtering by "zara" returns exactly that record
	want := []Contact{got}
	if diff := cmp.Diff(want, s.Search("zara")); diff != "" {
		t.Errorf("Search(zara) mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_AddAssignsFreshIDs(t *testing.T) {
	s := seededStore(t)

	a, err := s.Add(Candidate{Name: "One", Phone: "1111111111"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Add(Candidate{Name: "Two", Phone: "2222222222"})
	if err != nil {
		t.Fatal(err)
	}

	if a.ID <= 3 {
		t.Errorf("first added ID = %d, want > 3 (past seeded IDs)", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("IDs not increasing: %d then %d", a.ID, b.ID)
	}
}

func TestStore_AddRejects(t *testing.T) {
	tests := []struct {
		name    string
		cand    Candidate
		wantErr error
	}{
		{name: "empty name", cand: Candidate{Name: "", Phone: "9000000001"}, wantErr: ErrEmptyName},
		{name: "whitespace name", cand: Candidate{Name: "   ", Phone: "9000000001"}, wantErr: ErrEmptyName},
		{name: "short phone", cand: Candidate{Name: "Bad", Phone: "123"}, wantErr: ErrInvalidPhone},
		{name: "long phone", cand: Candidate{Name: "Bad", Phone: "90000000011"}, wantErr: ErrInvalidPhone},
		{name: "phone with dashes", cand: Candidate{Name: "Bad", Phone: "900-000-00"}, wantErr: ErrInvalidPhone},
		{name: "phone with spaces", cand: Candidate{Name: "Bad", Phone: " 900000001"}, wantErr: ErrInvalidPhone},
		{name: "empty phone", cand: Candidate{Name: "Bad", Phone: ""}, wantErr: ErrInvalidPhone},
		{name: "duplicate name different case", cand: Candidate{Name: "aisha KAPOOR", Phone: "9000000001"}, wantErr: ErrDuplicate},
		{name: "duplicate phone", cand: Candidate{Name: "Someone Else", Phone: "9123456789"}, wantErr: ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the default contacts
			s := seededStore(t)
			before := snap(s)

			// When: an invalid candidate is added
			_, err := s.Add(tt.cand)

			// Then: the matching error is returned and nothing changes
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(before, snap(s)); diff != "" {
				t.Errorf("store changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestStore_AddBadScenario(t *testing.T) {
	s := seededStore(t)

	_, err := s.Add(Candidate{Name: "Bad", Phone: "123", Email: ""})

	if err == nil {
		t.Fatal("Add(Bad/123) should be rejected")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestStore_AddValidationOrder(t *testing.T) {
	// Empty name wins over a bad phone; a bad phone wins over a duplicate.
	s := seededStore(t)

	if _, err := s.Add(Candidate{Name: "", Phone: "1"}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name + bad phone: error = %v, want ErrEmptyName", err)
	}
	if _, err := s.Add(Candidate{Name: "Aisha Kapoor", Phone: "1"}); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("duplicate name + bad phone: error = %v, want ErrInvalidPhone", err)
	}
}

func TestStore_EditScenario(t *testing.T) {
	// Given: the default contacts
	s := seededStore(t)
	before := s.List()

	// When: contact 1 is renamed with its phone unchanged
	got, err := s.Edit(1, Candidate{Name: "Aisha K.", Phone: "9876543210", Email: "aisha@example.com"})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}

	// Then: the record is updated in place and the others are untouched
	want := Contact{ID: 1, Name: "Aisha K.", Phone: "9876543210", Email: "aisha@example.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Edit() result mismatch (-want +got):\n%s", diff)
	}
	after := s.List()
	if diff := cmp.Diff(want, after[0]); diff != "" {
		t.Errorf("stored record mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before[1:], after[1:]); diff != "" {
		t.Errorf("other records changed (-before +after):\n%s", diff)
	}
}

func TestStore_EditKeepsOwnNameAndPhone(t *testing.T) {
	// Uniqueness excludes the record being edited.
	s := seededStore(t)

	_, err := s.Edit(2, Candidate{Name: "ROHIT SHARMA", Phone: "9123456789", Email: "new@example.com"})

	if err != nil {
		t.Fatalf("Edit() with own name/phone error = %v", err)
	}
	got, _ := s.Get(2)
	if got.Email != "new@example.com" || got.Name != "ROHIT SHARMA" {
		t.Errorf("Get(2) = %+v, want updated name and email", got)
	}
}

func TestStore_EditRejects(t *testing.T) {
	tests := []struct {
		name    string
		id      ID
		cand    Candidate
		wantErr error
	}{
		{name: "empty name", id: 1, cand: Candidate{Name: " ", Phone: "9876543210"}, wantErr: ErrEmptyName},
		{name: "bad phone", id: 1, cand: Candidate{Name: "Aisha", Phone: "98765"}, wantErr: ErrInvalidPhone},
		{name: "name of another contact", id: 1, cand: Candidate{Name: "maya rao", Phone: "9876543210"}, wantErr: ErrDuplicate},
		{name: "phone of another contact", id: 1, cand: Candidate{Name: "Aisha", Phone: "9987654321"}, wantErr: ErrDuplicate},
		{name: "unknown id", id: 42, cand: Candidate{Name: "Nobody", Phone: "9000000001"}, wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededStore(t)
			before := snap(s)

			_, err := s.Edit(tt.id, tt.cand)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Edit() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(before, snap(s)); diff != "" {
				t.Errorf("store changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestStore_DeleteScenario(t *testing.T) {
	// Given: the default contacts
	s := seededStore(t)

	// When: contact 2 is deleted
	removed, ok := s.Delete(2)

	// Then: the active set shrinks to 2 and the bin holds 1
	if !ok {
		t.Fatal("Delete(2) reported not found")
	}
	if removed.Name != "Rohit Sharma" {
		t.Errorf("removed = %+v, want Rohit Sharma", removed)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.BinCount() != 1 {
		t.Errorf("BinCount() = %d, want 1", s.BinCount())
	}
	if _, found := s.Get(2); found {
		t.Error("Get(2) should not find a deleted contact")
	}
	if diff := cmp.Diff([]Contact{removed}, s.Bin()); diff != "" {
		t.Errorf("Bin() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_DeleteAbsentIsNoop(t *testing.T) {
	s := seededStore(t)
	before := snap(s)

	_, ok := s.Delete(99)

	if ok {
		t.Error("Delete(99) should report false")
	}
	if diff := cmp.Diff(before, snap(s)); diff != "" {
		t.Errorf("store changed (-before +after):\n%s", diff)
	}
}

func TestStore_DeleteTwiceBinsOnce(t *testing.T) {
	s := seededStore(t)

	s.Delete(1)
	s.Delete(1)

	if s.BinCount() != 1 {
		t.Errorf("BinCount() = %d, want 1", s.BinCount())
	}
}

func TestStore_DeletedNameCanBeReused(t *testing.T) {
	// The bin does not take part in uniqueness checks.
	s := seededStore(t)
	s.Delete(3)

	if _, err := s.Add(Candidate{Name: "Maya Rao", Phone: "9987654321"}); err != nil {
		t.Fatalf("Add() of a binned contact's details error = %v", err)
	}
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := seededStore(t)

	list := s.List()
	list[0].Name = "Mutated"

	got, _ := s.Get(1)
	if got.Name != "Aisha Kapoor" {
		t.Errorf("store mutated through List(): %+v", got)
	}
}

func TestStore_ViewSearchesThenSorts(t *testing.T) {
	s := seededStore(t)

	got := names(s.View("", Ascending))
	want := []string{"Aisha Kapoor", "Maya Rao", "Rohit Sharma"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("View(\"\", asc) mismatch (-want +got):\n%s", diff)
	}

	got = names(s.View("a", Descending))
	want = []string{"Rohit Sharma", "Maya Rao", "Aisha Kapoor"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("View(a, desc) mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Seed(t *testing.T) {
	t.Run("keeps ids and advances counter", func(t *testing.T) {
		s := NewStore()
		err := s.Seed([]Contact{
			{ID: 7, Name: "Seven", Phone: "7777777777"},
			{Name: "No ID", Phone: "8888888888"},
		})
		if err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if _, ok := s.Get(7); !ok {
			t.Error("seeded ID 7 not found")
		}
		if _, ok := s.Get(8); !ok {
			t.Error("zero ID should be assigned 8")
		}
		added, err := s.Add(Candidate{Name: "Next", Phone: "9999999999"})
		if err != nil {
			t.Fatal(err)
		}
		if added.ID != 9 {
			t.Errorf("next ID = %d, want 9", added.ID)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		s := NewStore()
		err := s.Seed([]Contact{
			{ID: 1, Name: "A", Phone: "1111111111"},
			{ID: 1, Name: "B", Phone: "2222222222"},
		})
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("Seed() error = %v, want ErrDuplicateID", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0 after failed seed", s.Len())
		}
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		s := NewStore()
		err := s.Seed([]Contact{
			{ID: 1, Name: "A", Phone: "1111111111"},
			{ID: 2, Name: "a", Phone: "2222222222"},
		})
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("Seed() error = %v, want ErrDuplicate", err)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0 after failed seed", s.Len())
		}
	})
}

func TestStore_LogsMutationsNotFailures(t *testing.T) {
	// Given: a store with an observed debug logger
	core, recorded := observer.New(zapcore.DebugLevel)
	s := seededStore(t, WithLogger(zap.New(core)))
	seedEntries := recorded.Len()

	// When: one failing and three succeeding mutations happen
	_, _ = s.Add(Candidate{Name: "Bad", Phone: "123"})
	added, _ := s.Add(Candidate{Name: "Zara Khan", Phone: "9000000001"})
	_, _ = s.Edit(added.ID, Candidate{Name: "Zara K.", Phone: "9000000001"})
	s.Delete(added.ID)

	// Then: only the successful ones are logged
	entries := recorded.All()[seedEntries:]
	var msgs []string
	for _, e := range entries {
		msgs = append(msgs, e.Message)
	}
	want := []string{"contact added", "contact edited", "contact binned"}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("log messages mismatch (-want +got):\n%s", diff)
	}
}

func names(cs []Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
