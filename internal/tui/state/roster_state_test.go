package state

import (
	"testing"

	"github.com/avelezt/lanes/internal/roster"
)

func rosterEntries() []roster.Entry {
	return []roster.Entry{
		{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com"},
		{ID: "u2", Name: "Grace Hopper", Email: "grace@example.com"},
		{ID: "u3", Name: "Alan Turing", Email: "alan@example.com"},
	}
}

func TestRosterFilterMatchesNameAndEmail(t *testing.T) {
	s := NewRosterState()
	s.SetEntries(rosterEntries())

	s.SetFilter("GRACE")
	got := s.FilteredEntries()
	if len(got) != 1 || got[0].ID != "u2" {
		t.Errorf("filtered by name = %v", got)
	}

	s.SetFilter("example.com")
	if got := s.FilteredEntries(); len(got) != 3 {
		t.Errorf("filtered by email = %d entries, want 3", len(got))
	}

	s.SetFilter("zzz")
	if got := s.FilteredEntries(); len(got) != 0 {
		t.Errorf("filter with no matches = %v", got)
	}
}

func TestRosterFilterResetsCursor(t *testing.T) {
	s := NewRosterState()
	s.SetEntries(rosterEntries())
	s.SetCursor(2)

	s.SetFilter("a")
	if s.Cursor() != 0 {
		t.Errorf("cursor after filter change = %d, want 0", s.Cursor())
	}
}

func TestRosterCurrentEntry(t *testing.T) {
	s := NewRosterState()
	s.SetEntries(rosterEntries())

	s.SetCursor(1)
	entry, ok := s.CurrentEntry()
	if !ok || entry.ID != "u2" {
		t.Errorf("CurrentEntry = (%v, %v)", entry, ok)
	}

	// Cursor beyond the filtered list yields nothing.
	s.SetFilter("ada")
	s.SetCursor(5)
	if _, ok := s.CurrentEntry(); ok {
		t.Error("CurrentEntry returned an entry past the filtered list")
	}
}

func TestRosterSetEntriesClampsCursor(t *testing.T) {
	s := NewRosterState()
	s.SetEntries(rosterEntries())
	s.SetCursor(2)

	s.SetEntries(rosterEntries()[:1])
	if s.Cursor() != 0 {
		t.Errorf("cursor after shrink = %d, want 0", s.Cursor())
	}
}

func TestRosterReset(t *testing.T) {
	s := NewRosterState()
	s.SetEntries(rosterEntries())
	s.SetFilter("ada")
	s.SetSubmitting(true)
	s.Selection().Toggle(roster.Entry{ID: "u1", Status: roster.StatusAvailable})

	s.Reset()
	if len(s.Entries()) != 0 || s.Filter() != "" || s.Submitting() {
		t.Error("Reset left picker state behind")
	}
	if s.Selection().HasChanges() {
		t.Error("Reset kept the staged selection")
	}
}
