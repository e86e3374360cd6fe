package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/tui/huhforms"
	"github.com/avelezt/lanes/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.Logout:
		return m, m.logoutCmd()
	case km.Refresh:
		return m.handleRefresh()

	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	case km.NextCard, "down":
		return m.handleNavigateDown()

	case km.MoveCardUp:
		return m.handleMoveCardUp()
	case km.MoveCardDown:
		return m.handleMoveCardDown()
	case km.MoveCardLeft:
		return m.handleMoveCardAcross(-1)
	case km.MoveCardRight:
		return m.handleMoveCardAcross(1)

	case km.MoveColumnLeft:
		return m.handleMoveColumn(-1)
	case km.MoveColumnRight:
		return m.handleMoveColumn(1)

	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard:
		return m.handleEditCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.ViewCard:
		return m.handleViewCard()

	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()

	case km.PrevSpace:
		return m.handleSwitchSpace(-1)
	case km.NextSpace:
		return m.handleSwitchSpace(1)
	case km.CreateSpace:
		return m.handleCreateSpace()

	case km.Invites:
		return m.handleOpenInvites()
	case km.FilterAssignee:
		m.UiState.SetMode(state.FilterPickerMode)
		return m, nil
	}

	return m, nil
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.fetchProjectsCmd(), m.fetchUsersCmd()}
	if p := m.CurrentProject(); p != nil {
		cmds = append(cmds, m.fetchColumnsCmd(p.ID, 0))
	}
	return m, tea.Batch(cmds...)
}

// Navigation

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	b := m.AppState.Board()
	if b != nil && m.UiState.SelectedColumn() < len(b.Columns())-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
		m.ensureSelectedCardVisible()
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	col := m.CurrentColumn()
	if col == nil {
		return m, nil
	}
	cards := m.AppState.VisibleCards(col)
	if m.UiState.SelectedCard() < len(cards)-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
		m.ensureSelectedCardVisible()
	}
	return m, nil
}

func (m Model) ensureSelectedCardVisible() {
	col := m.CurrentColumn()
	if col == nil {
		return
	}
	visibleCount := max((m.UiState.ContentHeight()-5)/5, 1)
	m.UiState.EnsureCardVisible(col.Key(), m.UiState.SelectedCard(), visibleCount)
}

// Card reorder within a column. The change is applied locally first and
// the full replacement card list is persisted; on failure the board rolls
// back to the pre-move snapshot.
func (m Model) handleMoveCardUp() (tea.Model, tea.Cmd) {
	return m.moveCardWithin(-1)
}

func (m Model) handleMoveCardDown() (tea.Model, tea.Cmd) {
	return m.moveCardWithin(1)
}

func (m Model) moveCardWithin(direction int) (tea.Model, tea.Cmd) {
	if m.AppState.AssigneeFilter() != "" {
		m.NotificationState.Add(state.LevelInfo, "Clear the filter to reorder cards")
		return m, nil
	}
	b := m.AppState.Board()
	col := m.CurrentColumn()
	if b == nil || col == nil || len(col.Cards) == 0 {
		return m, nil
	}

	srcIdx := m.UiState.SelectedCard()
	// The insertion index before removal: one slot above, or two slots
	// down so the card lands just after its lower neighbour.
	rawIdx := srcIdx - 1
	if direction > 0 {
		rawIdx = srcIdx + 2
	}

	next, ok := board.MoveCardWithin(col.Cards, srcIdx, rawIdx)
	if !ok {
		return m, nil
	}

	snapshot := b.Snapshot()
	project := m.CurrentProject()

	updated := b.Snapshot()
	updated[m.UiState.SelectedColumn()].Cards = next
	b.ReplaceColumns(updated)

	target := srcIdx + direction
	m.UiState.SetSelectedCard(clampIndex(target, len(next)))
	m.ensureSelectedCardVisible()

	version := b.Begin()
	return m, m.replaceCardsCmd(project.ID, col.Name, next, version, snapshot)
}

// handleMoveCardAcross moves the selected card to the neighbouring column,
// appended at the end, with its status rewritten to the destination name.
// Persistence is two sequential replacement calls handled by crossMoveCmd.
func (m Model) handleMoveCardAcross(direction int) (tea.Model, tea.Cmd) {
	if m.AppState.AssigneeFilter() != "" {
		m.NotificationState.Add(state.LevelInfo, "Clear the filter to move cards")
		return m, nil
	}
	b := m.AppState.Board()
	col := m.CurrentColumn()
	if b == nil || col == nil || len(col.Cards) == 0 {
		return m, nil
	}

	dstIdx := m.UiState.SelectedColumn() + direction
	columns := b.Columns()
	if dstIdx < 0 || dstIdx >= len(columns) {
		m.NotificationState.Add(state.LevelInfo, "No column in that direction")
		return m, nil
	}
	dst := columns[dstIdx]

	srcIdx := m.UiState.SelectedCard()
	srcNext, dstNext, ok := board.MoveCardAcross(col.Cards, dst.Cards, srcIdx, len(dst.Cards), dst.Name)
	if !ok {
		return m, nil
	}

	snapshot := b.Snapshot()
	project := m.CurrentProject()
	srcName := col.Name

	updated := b.Snapshot()
	updated[m.UiState.SelectedColumn()].Cards = srcNext
	updated[dstIdx].Cards = dstNext
	b.ReplaceColumns(updated)

	// Selection follows the moved card
	m.UiState.SetSelectedColumn(dstIdx)
	m.UiState.SetSelectedCard(len(dstNext) - 1)
	m.UiState.EnsureSelectionVisible(dstIdx)
	m.ensureSelectedCardVisible()

	version := b.Begin()
	return m, m.crossMoveCmd(project.ID, srcName, dst.Name, srcNext, dstNext, version, snapshot)
}

// handleMoveColumn repositions the selected column one slot left or right.
// The server stores 1-based order values and returns the authoritative
// normalized set.
func (m Model) handleMoveColumn(direction int) (tea.Model, tea.Cmd) {
	b := m.AppState.Board()
	col := m.CurrentColumn()
	if b == nil || col == nil {
		return m, nil
	}

	columns := b.Columns()
	srcIdx := m.UiState.SelectedColumn()
	insertIdx := srcIdx + direction
	if direction > 0 {
		// Insertion index is expressed before removal
		insertIdx = srcIdx + 2
	}

	order, ok := board.ColumnTargetOrder(len(columns), srcIdx, insertIdx)
	if !ok {
		return m, nil
	}

	snapshot := b.Snapshot()
	project := m.CurrentProject()
	colName := col.Name

	// Optimistic local reorder
	targetIdx := clampIndex(srcIdx+direction, len(columns))
	moved := columns[srcIdx]
	rest := append(append([]models.Column{}, columns[:srcIdx]...), columns[srcIdx+1:]...)
	next := append(append(append([]models.Column{}, rest[:targetIdx]...), moved), rest[targetIdx:]...)
	b.ReplaceColumns(next)

	m.UiState.SetSelectedColumn(targetIdx)
	m.UiState.EnsureSelectionVisible(targetIdx)

	version := b.Begin()
	return m, m.setColumnOrderCmd(project.ID, colName, order, version, snapshot)
}

// Card CRUD

func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	col := m.CurrentColumn()
	if col == nil {
		m.NotificationState.Add(state.LevelInfo, "Create a column first")
		return m, nil
	}
	fs := m.FormState
	fs.ClearCardForm()
	fs.CardForm = huhforms.CreateCardForm(
		&fs.CardTitle, &fs.CardDescription, &fs.CardDueDate, &fs.CardAssignee,
		m.assigneeOptions(), new(bool),
	)
	m.UiState.SetMode(state.CardFormMode)
	return m, fs.CardForm.Init()
}

func (m Model) handleEditCard() (tea.Model, tea.Cmd) {
	card := m.CurrentCard()
	if card == nil {
		return m, nil
	}
	idx := m.currentCardUnfilteredIndex()
	if idx < 0 {
		return m, nil
	}
	fs := m.FormState
	fs.ClearCardForm()
	fs.CardTitle = card.Title
	fs.CardDescription = card.Description
	if card.DueDate != nil {
		fs.CardDueDate = card.DueDate.Format("2006-01-02")
	}
	fs.CardAssignee = card.Assignee
	fs.EditingCard = idx
	fs.CardForm = huhforms.CreateCardForm(
		&fs.CardTitle, &fs.CardDescription, &fs.CardDueDate, &fs.CardAssignee,
		m.assigneeOptions(), new(bool),
	)
	m.UiState.SetMode(state.CardFormMode)
	return m, fs.CardForm.Init()
}

func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	if m.CurrentCard() == nil {
		return m, nil
	}
	m.UiState.SetMode(state.DeleteCardConfirmMode)
	return m, nil
}

func (m Model) handleViewCard() (tea.Model, tea.Cmd) {
	if m.CurrentCard() == nil {
		return m, nil
	}
	m.UiState.SetMode(state.CardViewMode)
	return m, nil
}

// handleDeleteCardConfirm handles the y/n confirmation for card deletion.
// Deletion is a full column replacement without the card.
func (m Model) handleDeleteCardConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		return m.deleteSelectedCard()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) deleteSelectedCard() (tea.Model, tea.Cmd) {
	b := m.AppState.Board()
	col := m.CurrentColumn()
	idx := m.currentCardUnfilteredIndex()
	if b == nil || col == nil || idx < 0 {
		return m, nil
	}

	snapshot := b.Snapshot()
	project := m.CurrentProject()

	next := append(append([]models.Card{}, col.Cards[:idx]...), col.Cards[idx+1:]...)
	updated := b.Snapshot()
	updated[m.UiState.SelectedColumn()].Cards = next
	b.ReplaceColumns(updated)
	m.clampAfterBoardChange()

	version := b.Begin()
	return m, m.replaceCardsCmd(project.ID, col.Name, next, version, snapshot)
}

// Column CRUD

func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	if m.CurrentProject() == nil {
		m.NotificationState.Add(state.LevelInfo, "Open a space first")
		return m, nil
	}
	fs := m.FormState
	fs.ClearColumnForm()
	fs.ColumnForm = huhforms.CreateColumnForm(&fs.ColumnName, false)
	m.UiState.SetMode(state.ColumnFormMode)
	return m, fs.ColumnForm.Init()
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col := m.CurrentColumn()
	if col == nil {
		return m, nil
	}
	fs := m.FormState
	fs.ClearColumnForm()
	fs.ColumnName = col.Name
	fs.RenamingColumn = col.Name
	fs.ColumnForm = huhforms.CreateColumnForm(&fs.ColumnName, true)
	m.UiState.SetMode(state.ColumnFormMode)
	return m, fs.ColumnForm.Init()
}

// handleDeleteColumn deletes the selected column. When it still holds cards
// a destination column must be picked first; the server refuses a deletion
// that would orphan cards.
func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	b := m.AppState.Board()
	col := m.CurrentColumn()
	project := m.CurrentProject()
	if b == nil || col == nil || project == nil {
		return m, nil
	}
	if len(col.Cards) == 0 {
		return m, m.deleteColumnCmd(project.ID, col.Name, "")
	}
	if len(b.Columns()) == 1 {
		m.NotificationState.Add(state.LevelInfo, "No other column to move its cards to")
		return m, nil
	}

	candidates := make([]string, 0, len(b.Columns())-1)
	for _, c := range b.Columns() {
		if c.Key() != col.Key() {
			candidates = append(candidates, c.Name)
		}
	}

	fs := m.FormState
	fs.ClearTargetForm()
	fs.DeletingColumn = col.Name
	fs.TargetForm = huhforms.CreateTargetColumnForm(col.Name, len(col.Cards), candidates, &fs.TargetColumn)
	m.UiState.SetMode(state.DeleteColumnConfirmMode)
	return m, fs.TargetForm.Init()
}

// Spaces

func (m Model) handleSwitchSpace(direction int) (tea.Model, tea.Cmd) {
	projects := m.AppState.Projects()
	if len(projects) < 2 {
		return m, nil
	}
	next := (m.AppState.SelectedProject() + direction + len(projects)) % len(projects)
	m.adoptProject(next)

	project := projects[next]
	if m.Cache != nil {
		if columns, ok := m.Cache.LoadBoard(m.Ctx, project.ID); ok {
			m.AppState.Board().ReplaceColumns(columns)
		}
	}
	return m, m.fetchColumnsCmd(project.ID, 0)
}

func (m Model) handleCreateSpace() (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.ClearProjectForm()
	fs.ProjectForm = huhforms.CreateProjectForm(&fs.ProjectName, &fs.ProjectDescription, new(bool))
	m.UiState.SetMode(state.ProjectFormMode)
	return m, fs.ProjectForm.Init()
}

// Invites

func (m Model) handleOpenInvites() (tea.Model, tea.Cmd) {
	project := m.CurrentProject()
	if project == nil {
		return m, nil
	}
	m.RosterState.Reset()
	m.RosterState.ResetSelection(project.ID, len(project.Members), len(project.PendingInvites()))
	m.rebuildRoster()
	m.UiState.SetMode(state.InviteMode)

	// Refresh both sides of the roster while the picker is open
	return m, tea.Batch(m.fetchUsersCmd(), m.fetchProjectCmd(project.ID))
}

// assigneeOptions builds the assignee choices for the card form from the
// space's members.
func (m Model) assigneeOptions() []huhforms.AssigneeOption {
	project := m.CurrentProject()
	if project == nil {
		return nil
	}
	var opts []huhforms.AssigneeOption
	seen := map[string]bool{}
	addRef := func(ref models.Ref) {
		name := ref.DisplayName()
		if name == "" {
			name = ref.Email()
		}
		value := name
		if value == "" || seen[value] {
			return
		}
		seen[value] = true
		opts = append(opts, huhforms.AssigneeOption{Label: name, Value: value})
	}
	addRef(project.Owner)
	for _, member := range project.Members {
		addRef(member)
	}
	return opts
}

func clampIndex(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
