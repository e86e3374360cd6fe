package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/roster"
	"github.com/avelezt/lanes/internal/tui/state"
)

// handleInviteMode handles key events in the invite roster picker.
//
// Keys: up/down move the cursor, space stages or unstages the person under
// it, enter submits the staged changes, esc closes the picker, and printable
// characters narrow the list.
func (m Model) handleInviteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rs := m.RosterState
	if rs.Submitting() {
		// Ignore input while the submission is in flight
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+c":
		rs.Reset()
		m.UiState.SetMode(state.NormalMode)
		return m, nil

	case "up", "ctrl+k":
		if rs.Cursor() > 0 {
			rs.SetCursor(rs.Cursor() - 1)
		}
		return m, nil

	case "down", "ctrl+j":
		if rs.Cursor() < len(rs.FilteredEntries())-1 {
			rs.SetCursor(rs.Cursor() + 1)
		}
		return m, nil

	case " ":
		if entry, ok := rs.CurrentEntry(); ok {
			rs.Selection().Toggle(entry)
		}
		return m, nil

	case "enter":
		return m.submitInvites()

	case "backspace":
		if f := rs.Filter(); f != "" {
			rs.SetFilter(f[:len(f)-1])
		}
		return m, nil
	}

	// Printable characters extend the filter
	if key := msg.String(); len(key) == 1 {
		rs.SetFilter(rs.Filter() + key)
	}
	return m, nil
}

// submitInvites builds the submission plan from the staged selection and
// sends it: at most one invite call and one revoke call.
func (m Model) submitInvites() (tea.Model, tea.Cmd) {
	rs := m.RosterState
	project := m.CurrentProject()
	if project == nil {
		return m, nil
	}

	plan, err := roster.BuildPlan(rs.Entries(), rs.Selection())
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNothingSelected):
			m.NotificationState.Add(state.LevelInfo, "Nothing selected")
		case errors.Is(err, roster.ErrMissingEmail):
			m.NotificationState.Add(state.LevelError, "A selected person has no email on file")
		default:
			m.NotificationState.Add(state.LevelError, "Could not prepare the submission")
		}
		return m, nil
	}

	rs.SetSubmitting(true)
	return m, m.submitInvitesCmd(project.ID, plan)
}

// handleFilterPicker handles key events in the assignee filter picker.
// The options are the distinct assignee keys present on the board.
func (m Model) handleFilterPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.filterOptions()

	switch msg.String() {
	case "esc", "q", "ctrl+c":
		m.UiState.SetMode(state.NormalMode)
		return m, nil

	case "c":
		m.AppState.ClearAssigneeFilter()
		m.UiState.SetMode(state.NormalMode)
		m.clampAfterBoardChange()
		return m, nil
	}

	// Number keys pick an option directly
	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(options) {
			m.AppState.SetAssigneeFilter(options[idx])
			m.UiState.SetMode(state.NormalMode)
			m.UiState.SetSelectedCard(0)
			m.clampAfterBoardChange()
		}
	}
	return m, nil
}

// filterOptions returns the distinct assignee keys on the board, in first
// appearance order, capped at nine so single digits can pick them.
func (m Model) filterOptions() []string {
	b := m.AppState.Board()
	if b == nil {
		return nil
	}
	var options []string
	seen := map[string]bool{}
	for _, col := range b.Columns() {
		for i := range col.Cards {
			key := col.Cards[i].AssigneeKey()
			if !seen[key] {
				seen[key] = true
				options = append(options, key)
			}
			if len(options) == 9 {
				return options
			}
		}
	}
	return options
}
