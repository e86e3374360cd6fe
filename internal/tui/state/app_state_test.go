package state

import (
	"testing"

	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/models"
)

func TestSetProjectsClampsSelection(t *testing.T) {
	s := NewAppState([]models.Project{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 2, nil)

	s.SetProjects([]models.Project{{ID: "a"}})
	if s.SelectedProject() != 0 {
		t.Errorf("selected project = %d, want 0", s.SelectedProject())
	}

	s.SetProjects(nil)
	if s.SelectedProject() != 0 {
		t.Errorf("selected project with no spaces = %d, want 0", s.SelectedProject())
	}
	if s.CurrentProject() != nil {
		t.Error("CurrentProject returned a space from an empty list")
	}
}

func TestReplaceProject(t *testing.T) {
	s := NewAppState([]models.Project{{ID: "a", Name: "Old"}, {ID: "b"}}, 0, nil)

	s.ReplaceProject(models.Project{ID: "a", Name: "New"})
	if got := s.Projects()[0].Name; got != "New" {
		t.Errorf("project name = %q, want New", got)
	}

	// Unknown ids are ignored rather than appended.
	s.ReplaceProject(models.Project{ID: "zzz"})
	if len(s.Projects()) != 2 {
		t.Errorf("project count = %d, want 2", len(s.Projects()))
	}
}

func TestVisibleCards(t *testing.T) {
	s := NewAppState(nil, 0, nil)
	col := &models.Column{
		Name: "Todo",
		Cards: []models.Card{
			{Title: "mine", Assignee: "ada"},
			{Title: "theirs", Assignee: "grace"},
			{Title: "nobodys"},
		},
	}

	// No filter: the column's own slice comes back untouched.
	if got := s.VisibleCards(col); len(got) != 3 {
		t.Errorf("unfiltered cards = %d, want 3", len(got))
	}

	s.SetAssigneeFilter("ada")
	got := s.VisibleCards(col)
	if len(got) != 1 || got[0].Title != "mine" {
		t.Errorf("filtered cards = %v", got)
	}

	// The unassigned sentinel matches cards without an assignee.
	s.SetAssigneeFilter(models.Unassigned)
	got = s.VisibleCards(col)
	if len(got) != 1 || got[0].Title != "nobodys" {
		t.Errorf("unassigned filter cards = %v", got)
	}

	s.ClearAssigneeFilter()
	if got := s.VisibleCards(col); len(got) != 3 {
		t.Errorf("cards after clearing filter = %d, want 3", len(got))
	}
}

func TestTotalCardCount(t *testing.T) {
	s := NewAppState(nil, 0, nil)
	if got := s.TotalCardCount(); got != 0 {
		t.Errorf("count with no board = %d, want 0", got)
	}

	b := board.NewState("p1")
	b.ReplaceColumns([]models.Column{
		{Name: "Todo", Cards: []models.Card{{Title: "a"}, {Title: "b"}}},
		{Name: "Done", Cards: []models.Card{{Title: "c"}}},
	})
	s.SetBoard(b)

	// The count ignores the assignee filter.
	s.SetAssigneeFilter("ada")
	if got := s.TotalCardCount(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}
