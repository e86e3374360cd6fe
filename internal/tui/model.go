// Package tui implements the terminal user interface for lanes.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/cache"
	"github.com/avelezt/lanes/internal/config"
	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/session"
	"github.com/avelezt/lanes/internal/tui/huhforms"
	"github.com/avelezt/lanes/internal/tui/state"
)

// Model represents the application state for the TUI.
type Model struct {
	Ctx     context.Context
	Gateway api.Gateway
	Session *session.Store
	Cache   *cache.Store
	Config  *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	RosterState       *state.RosterState
	NotificationState *state.NotificationState
}

// InitialModel creates and initializes the TUI model. When a session already
// exists the model starts on the board, seeded from the snapshot cache until
// the server responds. Otherwise it starts on the login form.
func InitialModel(ctx context.Context, gw api.Gateway, sess *session.Store, store *cache.Store, cfg *config.Config) Model {
	appState := state.NewAppState(nil, 0, nil)
	uiState := state.NewUIState()
	formState := state.NewFormState()

	m := Model{
		Ctx:               ctx,
		Gateway:           gw,
		Session:           sess,
		Cache:             store,
		Config:            cfg,
		AppState:          appState,
		UiState:           uiState,
		FormState:         formState,
		RosterState:       state.NewRosterState(),
		NotificationState: state.NewNotificationState(),
	}

	if sess.LoggedIn() {
		appState.SetCurrentUser(sess.User())
		uiState.SetMode(state.NormalMode)
		m.seedFromCache()
	} else {
		formState.LoginStage = state.StageEmail
		formState.LoginForm = huhforms.CreateEmailForm(&formState.Email)
		uiState.SetMode(state.LoginMode)
	}

	return m
}

// seedFromCache shows the last known projects and board while the
// initial fetches are in flight.
func (m *Model) seedFromCache() {
	if m.Cache == nil {
		return
	}
	projects, ok := m.Cache.LoadProjects(m.Ctx)
	if !ok || len(projects) == 0 {
		return
	}
	m.AppState.SetProjects(projects)
	m.adoptProject(0)
	if columns, ok := m.Cache.LoadBoard(m.Ctx, projects[0].ID); ok {
		m.AppState.Board().ReplaceColumns(columns)
	}
}

// Init starts the initial data fetches.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	if m.UiState.Mode() == state.LoginMode {
		if m.FormState.LoginForm != nil {
			return m.FormState.LoginForm.Init()
		}
		return nil
	}
	return tea.Batch(m.fetchProjectsCmd(), m.fetchUsersCmd())
}

// CurrentProject returns the currently open space, or nil.
func (m Model) CurrentProject() *models.Project {
	return m.AppState.CurrentProject()
}

// CurrentColumn returns the currently selected column, or nil.
func (m Model) CurrentColumn() *models.Column {
	b := m.AppState.Board()
	if b == nil {
		return nil
	}
	columns := b.Columns()
	if len(columns) == 0 || m.UiState.SelectedColumn() >= len(columns) {
		return nil
	}
	return &columns[m.UiState.SelectedColumn()]
}

// CurrentCard returns the selected card in the selected column, or nil.
// Selection indexes the filtered card list the user sees.
func (m Model) CurrentCard() *models.Card {
	col := m.CurrentColumn()
	if col == nil {
		return nil
	}
	cards := m.AppState.VisibleCards(col)
	if len(cards) == 0 || m.UiState.SelectedCard() >= len(cards) {
		return nil
	}
	return &cards[m.UiState.SelectedCard()]
}

// currentCardUnfilteredIndex maps the selected (filtered) card back to its
// index in the column's real card slice. Returns -1 when nothing is selected.
func (m Model) currentCardUnfilteredIndex() int {
	col := m.CurrentColumn()
	if col == nil {
		return -1
	}
	card := m.CurrentCard()
	if card == nil {
		return -1
	}
	if m.AppState.AssigneeFilter() == "" {
		return m.UiState.SelectedCard()
	}
	// The filtered view hides cards, so walk the real slice counting matches
	seen := 0
	for i := range col.Cards {
		if col.Cards[i].AssigneeKey() != m.AppState.AssigneeFilter() {
			continue
		}
		if seen == m.UiState.SelectedCard() {
			return i
		}
		seen++
	}
	return -1
}

// adoptProject switches the open space to the given index and resets
// board-scoped state.
func (m *Model) adoptProject(index int) {
	if index < 0 || index >= len(m.AppState.Projects()) {
		return
	}
	m.AppState.SetSelectedProject(index)
	project := m.AppState.Projects()[index]
	m.AppState.SetBoard(board.NewState(project.ID))
	m.AppState.ClearAssigneeFilter()
	m.UiState.ResetSelection()
	m.RosterState.Reset()
}

// clampAfterBoardChange keeps the selection valid after columns were replaced.
func (m *Model) clampAfterBoardChange() {
	b := m.AppState.Board()
	if b == nil {
		return
	}
	columns := b.Columns()
	cardsLen := 0
	if len(columns) > 0 {
		idx := min(m.UiState.SelectedColumn(), len(columns)-1)
		cardsLen = len(m.AppState.VisibleCards(&columns[idx]))
	}
	m.UiState.ClampSelection(len(columns), cardsLen)
}
