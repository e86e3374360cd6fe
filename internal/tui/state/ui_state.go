package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	LoginMode               Mode = iota // Email and OTP entry, shown before a session exists
	NormalMode                          // Default navigation mode
	HelpMode                            // Displaying help screen
	CardFormMode                        // Card create/edit form with huh
	ColumnFormMode                      // Column create/rename form with huh
	ProjectFormMode                     // Space creation form with huh
	DeleteCardConfirmMode               // Confirming card deletion
	DeleteColumnConfirmMode             // Picking a destination column before deleting one that has cards
	InviteMode                          // Invite roster picker
	FilterPickerMode                    // Assignee filter picker
	CardViewMode                        // Read-only card detail popup
)

// UIState manages the user interface state: navigation, viewport
// scrolling, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset per column key
	cardScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              LoginMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board area.
// This is terminal height minus tab bar and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3
	const statusBarHeight = 2
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width.
//
// Column layout:
//   - Content width: 36 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//
// Four characters are reserved for margins and scroll indicators,
// and at least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 42
	const reservedWidth = 4

	availableWidth := s.width - reservedWidth
	s.viewportSize = max(1, availableWidth/columnWidth)
}

// ScrollViewportLeft scrolls the viewport one column to the left.
// Returns false if already at the leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one column to the right.
// Returns false if already at the rightmost position.
func (s *UIState) ScrollViewportRight(columnsLen int) bool {
	if s.viewportOffset+s.viewportSize < columnsLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ClampSelection keeps column and card selection within the given bounds.
// Called after any mutation that can shrink the board.
func (s *UIState) ClampSelection(columnsLen, cardsLen int) {
	if columnsLen == 0 {
		s.selectedColumn = 0
		s.selectedCard = 0
		s.viewportOffset = 0
		return
	}
	if s.selectedColumn >= columnsLen {
		s.selectedColumn = columnsLen - 1
	}
	if cardsLen == 0 {
		s.selectedCard = 0
	} else if s.selectedCard >= cardsLen {
		s.selectedCard = cardsLen - 1
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// ResetSelection resets column and card selection to the origin.
// Typically called when switching spaces.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
	s.viewportOffset = 0
	s.cardScrollOffsets = make(map[string]int)
}

// CardScrollOffset returns the vertical scroll offset for a column key.
func (s *UIState) CardScrollOffset(columnKey string) int {
	return s.cardScrollOffsets[columnKey]
}

// SetCardScrollOffset updates the vertical scroll offset for a column key.
func (s *UIState) SetCardScrollOffset(columnKey string, offset int) {
	s.cardScrollOffsets[columnKey] = max(0, offset)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is visible.
func (s *UIState) EnsureCardVisible(columnKey string, selectedIdx int, visibleCount int) {
	offset := s.cardScrollOffsets[columnKey]
	if selectedIdx < offset {
		s.cardScrollOffsets[columnKey] = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[columnKey] = selectedIdx - visibleCount + 1
	}
}
