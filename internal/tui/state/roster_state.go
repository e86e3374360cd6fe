package state

import (
	"strings"

	"github.com/avelezt/lanes/internal/roster"
)

// RosterState manages the invite picker popup state.
// This includes the classified roster entries, cursor position, text
// filtering, and the staged invite/revoke selection.
type RosterState struct {
	// entries contains the classified roster for the current space
	entries []roster.Entry

	// selection holds the staged invite and revoke choices
	selection *roster.Selection

	// cursor is the current cursor position in the picker list
	cursor int

	// filter is the text filter for searching people
	filter string

	// submitting is true while the invite/revoke calls are in flight
	submitting bool
}

// NewRosterState creates a new RosterState with an empty selection.
func NewRosterState() *RosterState {
	return &RosterState{
		entries:   []roster.Entry{},
		selection: roster.NewSelection("", 0, 0),
	}
}

// Entries returns the classified roster entries.
func (s *RosterState) Entries() []roster.Entry {
	return s.entries
}

// SetEntries replaces the roster entries.
func (s *RosterState) SetEntries(entries []roster.Entry) {
	s.entries = entries
	if s.cursor >= len(entries) {
		s.cursor = max(0, len(entries)-1)
	}
}

// Selection returns the staged invite/revoke selection.
func (s *RosterState) Selection() *roster.Selection {
	return s.selection
}

// Cursor returns the current cursor position.
func (s *RosterState) Cursor() int {
	return s.cursor
}

// SetCursor sets the cursor position, clamped to the filtered list.
func (s *RosterState) SetCursor(pos int) {
	s.cursor = max(0, pos)
}

// Filter returns the current filter text.
func (s *RosterState) Filter() string {
	return s.filter
}

// SetFilter sets the filter text and resets the cursor.
func (s *RosterState) SetFilter(filter string) {
	s.filter = filter
	s.cursor = 0
}

// Submitting reports whether a submission is in flight.
func (s *RosterState) Submitting() bool {
	return s.submitting
}

// SetSubmitting marks whether a submission is in flight.
func (s *RosterState) SetSubmitting(v bool) {
	s.submitting = v
}

// FilteredEntries returns entries matching the current filter text.
// Matching is case-insensitive against name and email.
func (s *RosterState) FilteredEntries() []roster.Entry {
	if s.filter == "" {
		return s.entries
	}
	needle := strings.ToLower(s.filter)
	filtered := []roster.Entry{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Email), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// CurrentEntry returns the entry under the cursor in the filtered list.
func (s *RosterState) CurrentEntry() (roster.Entry, bool) {
	filtered := s.FilteredEntries()
	if len(filtered) == 0 || s.cursor >= len(filtered) {
		return roster.Entry{}, false
	}
	return filtered[s.cursor], true
}

// Reset clears entries, filter, cursor, and the staged selection.
func (s *RosterState) Reset() {
	s.entries = []roster.Entry{}
	s.selection = roster.NewSelection("", 0, 0)
	s.cursor = 0
	s.filter = ""
	s.submitting = false
}

// ResetSelection replaces the staged selection for a space.
func (s *RosterState) ResetSelection(projectID string, memberCount, inviteCount int) {
	s.selection = roster.NewSelection(projectID, memberCount, inviteCount)
}
