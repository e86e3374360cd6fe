package board

import (
	"testing"

	"github.com/avelezt/lanes/internal/models"
)

func TestStateReplaceAndFind(t *testing.T) {
	s := NewState("p1")
	s.ReplaceColumns([]models.Column{
		{ID: "c1", Name: "Todo"},
		{Name: "Doing"}, // server omitted the id
	})

	idx, col := s.FindColumn("c1")
	if idx != 0 || col == nil || col.Name != "Todo" {
		t.Errorf("FindColumn by id = (%d, %v)", idx, col)
	}

	idx, col = s.FindColumn("Doing")
	if idx != 1 || col == nil {
		t.Errorf("FindColumn by name = (%d, %v)", idx, col)
	}

	idx, col = s.FindColumn("missing")
	if idx != -1 || col != nil {
		t.Errorf("FindColumn for unknown key = (%d, %v), want (-1, nil)", idx, col)
	}
}

func TestStateFindColumnPrefersID(t *testing.T) {
	s := NewState("p1")
	// A column whose name equals another column's id must not shadow it.
	s.ReplaceColumns([]models.Column{
		{ID: "x", Name: "Todo"},
		{ID: "y", Name: "x"},
	})

	idx, col := s.FindColumn("x")
	if idx != 0 || col.Name != "Todo" {
		t.Errorf("FindColumn(%q) = (%d, %q), want the id match first", "x", idx, col.Name)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewState("p1")
	s.ReplaceColumns([]models.Column{
		{Name: "Todo", Cards: []models.Card{{Title: "a"}}},
	})

	snap := s.Snapshot()
	snap[0].Name = "Changed"
	snap[0].Cards[0].Title = "changed"

	cols := s.Columns()
	if cols[0].Name != "Todo" {
		t.Errorf("column name leaked through snapshot: %q", cols[0].Name)
	}
	if cols[0].Cards[0].Title != "a" {
		t.Errorf("card title leaked through snapshot: %q", cols[0].Cards[0].Title)
	}
}

func TestSnapshotOfEmptyState(t *testing.T) {
	s := NewState("p1")
	if snap := s.Snapshot(); snap != nil {
		t.Errorf("Snapshot of empty state = %v, want nil", snap)
	}
}

func TestBeginAcceptDiscardsStaleResponses(t *testing.T) {
	s := NewState("p1")

	v1 := s.Begin()
	v2 := s.Begin()

	// The response for the older request must be discarded.
	if s.Accept(v1) {
		t.Error("Accept adopted a superseded version")
	}
	if !s.Accept(v2) {
		t.Error("Accept rejected the newest version")
	}
}

func TestBeginSupersedesAcrossColumns(t *testing.T) {
	s := NewState("p1")

	// Gestures on different columns still race: every adopted response
	// replaces the whole board, so a later request on any column must
	// invalidate an earlier in-flight one.
	todoV := s.Begin()
	doingV := s.Begin()

	if s.Accept(todoV) {
		t.Error("a later gesture did not supersede the earlier request")
	}
	if !s.Accept(doingV) {
		t.Error("Accept rejected the newest request")
	}
}

func TestAcceptWithoutBegin(t *testing.T) {
	s := NewState("p1")
	if s.Accept(1) {
		t.Error("Accept adopted a version that was never issued")
	}
	if s.Accept(0) {
		t.Error("Accept adopted the zero version")
	}
}
