package state

import "testing"

func TestViewportSizeFromWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 0, want: 1},
		{width: 40, want: 1}, // too narrow, but one column always shows
		{width: 46, want: 1},
		{width: 88, want: 2},
		{width: 130, want: 3},
		{width: 200, want: 4},
	}

	for _, tt := range tests {
		s := NewUIState()
		s.SetWidth(tt.width)
		if got := s.ViewportSize(); got != tt.want {
			t.Errorf("width %d: viewport size = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	s := NewUIState()
	s.SetHeight(30)
	if got := s.ContentHeight(); got != 25 {
		t.Errorf("ContentHeight = %d, want 25", got)
	}

	// A tiny terminal still gets a usable minimum.
	s.SetHeight(6)
	if got := s.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight on tiny terminal = %d, want 5", got)
	}
}

func TestViewportScrolling(t *testing.T) {
	s := NewUIState()
	s.SetWidth(88) // two columns visible

	if s.ScrollViewportLeft() {
		t.Error("scrolled left past the first column")
	}

	if !s.ScrollViewportRight(5) {
		t.Error("could not scroll right with columns off screen")
	}
	if s.ViewportOffset() != 1 {
		t.Errorf("offset = %d, want 1", s.ViewportOffset())
	}

	// offset 3 + size 2 == 5 columns: nothing further to reveal
	s.SetViewportOffset(3)
	if s.ScrollViewportRight(5) {
		t.Error("scrolled right past the last column")
	}

	if !s.ScrollViewportLeft() {
		t.Error("could not scroll back left")
	}
}

func TestEnsureSelectionVisible(t *testing.T) {
	s := NewUIState()
	s.SetWidth(88) // two columns visible

	// Selection ahead of the viewport pulls it forward.
	s.EnsureSelectionVisible(4)
	if s.ViewportOffset() != 3 {
		t.Errorf("offset = %d, want 3", s.ViewportOffset())
	}

	// Selection behind the viewport pulls it back.
	s.EnsureSelectionVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("offset = %d, want 0", s.ViewportOffset())
	}
}

func TestClampSelection(t *testing.T) {
	s := NewUIState()
	s.SetWidth(88)
	s.SetSelectedColumn(4)
	s.SetSelectedCard(7)
	s.SetViewportOffset(3)

	// Board shrank to 2 columns with 1 card in the selected one.
	s.ClampSelection(2, 1)
	if s.SelectedColumn() != 1 {
		t.Errorf("selected column = %d, want 1", s.SelectedColumn())
	}
	if s.SelectedCard() != 0 {
		t.Errorf("selected card = %d, want 0", s.SelectedCard())
	}
	if s.ViewportOffset() != 0 {
		t.Errorf("viewport offset = %d, want 0", s.ViewportOffset())
	}

	// Empty board resets everything.
	s.SetSelectedColumn(1)
	s.ClampSelection(0, 0)
	if s.SelectedColumn() != 0 || s.SelectedCard() != 0 {
		t.Error("empty board did not reset the selection")
	}
}

func TestCardScrollOffsets(t *testing.T) {
	s := NewUIState()

	s.SetCardScrollOffset("Todo", 3)
	if got := s.CardScrollOffset("Todo"); got != 3 {
		t.Errorf("offset = %d, want 3", got)
	}
	if got := s.CardScrollOffset("Done"); got != 0 {
		t.Errorf("untouched column offset = %d, want 0", got)
	}

	// Negative offsets clamp to zero.
	s.SetCardScrollOffset("Todo", -2)
	if got := s.CardScrollOffset("Todo"); got != 0 {
		t.Errorf("offset after negative set = %d, want 0", got)
	}
}

func TestEnsureCardVisible(t *testing.T) {
	s := NewUIState()

	// Selection below the visible window scrolls down.
	s.EnsureCardVisible("Todo", 5, 3)
	if got := s.CardScrollOffset("Todo"); got != 3 {
		t.Errorf("offset = %d, want 3", got)
	}

	// Selection above the window scrolls back up.
	s.EnsureCardVisible("Todo", 1, 3)
	if got := s.CardScrollOffset("Todo"); got != 1 {
		t.Errorf("offset = %d, want 1", got)
	}

	// Selection already visible leaves the offset alone.
	s.EnsureCardVisible("Todo", 2, 3)
	if got := s.CardScrollOffset("Todo"); got != 1 {
		t.Errorf("offset moved for a visible card: %d", got)
	}
}

func TestResetSelection(t *testing.T) {
	s := NewUIState()
	s.SetSelectedColumn(2)
	s.SetSelectedCard(3)
	s.SetViewportOffset(1)
	s.SetCardScrollOffset("Todo", 4)

	s.ResetSelection()
	if s.SelectedColumn() != 0 || s.SelectedCard() != 0 || s.ViewportOffset() != 0 {
		t.Error("ResetSelection left indices behind")
	}
	if s.CardScrollOffset("Todo") != 0 {
		t.Error("ResetSelection kept a stale card scroll offset")
	}
}
