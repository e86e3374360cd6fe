package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/roster"
	"github.com/avelezt/lanes/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		return m, nil

	case projectsMsg:
		return m.handleProjects(msg)

	case projectRefreshedMsg:
		return m.handleProjectRefreshed(msg)

	case projectCreatedMsg:
		return m.handleProjectCreated(msg)

	case usersMsg:
		m.AppState.SetUsers(msg.users)
		if m.UiState.Mode() == state.InviteMode {
			m.rebuildRoster()
		}
		return m, nil

	case columnsMsg:
		return m.handleColumns(msg)

	case boardErrMsg:
		return m.handleBoardErr(msg)

	case inviteDoneMsg:
		return m.handleInviteDone(msg)

	case otpSentMsg, userCheckedMsg, loggedInMsg, profileSavedMsg:
		return m.updateLogin(msg)

	case loggedOutMsg:
		return m.handleLoggedOut(msg)

	case errMsg:
		slog.Error("request failed", "error", msg.err)
		m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, msg.fallback))
		return m, nil
	}

	// Mode-specific handling: key events and form plumbing
	switch m.UiState.Mode() {
	case state.LoginMode:
		return m.updateLogin(msg)
	case state.CardFormMode, state.ColumnFormMode, state.ProjectFormMode, state.DeleteColumnConfirmMode:
		return m.updateForms(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

// handleKey dispatches key messages to the handler for the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.HelpMode, state.CardViewMode:
		// Any key closes these popups
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case state.DeleteCardConfirmMode:
		return m.handleDeleteCardConfirm(msg)
	case state.InviteMode:
		return m.handleInviteMode(msg)
	case state.FilterPickerMode:
		return m.handleFilterPicker(msg)
	}
	return m, nil
}

func (m Model) handleProjects(msg projectsMsg) (tea.Model, tea.Cmd) {
	previousID := ""
	if p := m.CurrentProject(); p != nil {
		previousID = p.ID
	}

	m.AppState.SetProjects(msg.projects)
	if m.Cache != nil {
		if err := m.Cache.SaveProjects(m.Ctx, msg.projects); err != nil {
			slog.Warn("could not cache spaces", "error", err)
		}
	}

	if len(msg.projects) == 0 {
		m.AppState.SetBoard(nil)
		return m, nil
	}

	// Stay on the same space when it still exists
	keep := 0
	for i, p := range msg.projects {
		if p.ID == previousID {
			keep = i
			break
		}
	}
	if previousID == "" || msg.projects[keep].ID != previousID || m.AppState.Board() == nil {
		m.adoptProject(keep)
	} else {
		m.AppState.SetSelectedProject(keep)
	}

	project := msg.projects[m.AppState.SelectedProject()]
	return m, m.fetchColumnsCmd(project.ID, 0)
}

func (m Model) handleProjectRefreshed(msg projectRefreshedMsg) (tea.Model, tea.Cmd) {
	if msg.project == nil {
		return m, nil
	}
	m.AppState.ReplaceProject(*msg.project)
	if m.UiState.Mode() == state.InviteMode {
		m.rebuildRoster()
	}
	return m, nil
}

func (m Model) handleProjectCreated(msg projectCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.project == nil {
		return m, nil
	}
	projects := append(m.AppState.Projects(), *msg.project)
	m.AppState.SetProjects(projects)
	m.adoptProject(len(projects) - 1)
	if msg.message != "" {
		m.NotificationState.Add(state.LevelInfo, msg.message)
	}
	return m, m.fetchColumnsCmd(msg.project.ID, 0)
}

// handleColumns adopts an authoritative column set from the server.
// Responses carrying a version are dropped when any newer order-affecting
// request has been stamped since.
func (m Model) handleColumns(msg columnsMsg) (tea.Model, tea.Cmd) {
	b := m.AppState.Board()
	if b == nil || b.ProjectID() != msg.projectID {
		// The user switched spaces while the request was in flight
		return m, nil
	}

	if msg.version != 0 && !b.Accept(msg.version) {
		slog.Debug("dropping stale board response", "version", msg.version)
		return m, nil
	}

	b.ReplaceColumns(msg.columns)
	m.clampAfterBoardChange()

	if m.Cache != nil {
		if err := m.Cache.SaveBoard(m.Ctx, msg.projectID, msg.columns); err != nil {
			slog.Warn("could not cache board", "error", err)
		}
	}

	if msg.message != "" {
		m.NotificationState.Add(state.LevelInfo, msg.message)
	}
	return m, nil
}

func (m Model) handleBoardErr(msg boardErrMsg) (tea.Model, tea.Cmd) {
	slog.Error("board mutation failed", "error", msg.err)
	m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, msg.fallback))

	b := m.AppState.Board()
	if b == nil || b.ProjectID() != msg.projectID {
		return m, nil
	}

	if msg.refetch {
		return m, m.fetchColumnsCmd(msg.projectID, 0)
	}
	if msg.snapshot != nil {
		b.ReplaceColumns(msg.snapshot)
		m.clampAfterBoardChange()
	}
	return m, nil
}

func (m Model) handleInviteDone(msg inviteDoneMsg) (tea.Model, tea.Cmd) {
	m.RosterState.SetSubmitting(false)

	if msg.err != nil && len(msg.results) == 0 {
		m.NotificationState.Add(state.LevelError, api.ErrorMessage(msg.err, "Could not update members"))
		return m, nil
	}

	summary := roster.FormatResults(msg.results, msg.message)
	if summary == "" {
		summary = "Members updated"
	}
	level := state.LevelInfo
	if msg.err != nil {
		level = state.LevelError
		summary += "; " + api.ErrorMessage(msg.err, "some changes failed")
	}
	m.NotificationState.Add(level, summary)

	m.RosterState.Selection().Clear()
	m.UiState.SetMode(state.NormalMode)

	// Refresh the space so membership reflects the server
	if p := m.CurrentProject(); p != nil {
		return m, tea.Batch(m.fetchProjectCmd(p.ID), m.fetchUsersCmd())
	}
	return m, nil
}

func (m Model) handleLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Warn("server logout failed", "error", msg.err)
	}
	if err := m.Session.Clear(); err != nil {
		slog.Warn("could not clear session", "error", err)
	}
	if m.Cache != nil {
		if err := m.Cache.Clear(m.Ctx); err != nil {
			slog.Warn("could not clear snapshot cache", "error", err)
		}
	}
	return m, tea.Quit
}

// rebuildRoster reclassifies the roster for the current space and keeps the
// staged selection only if the membership has not shifted under it.
func (m *Model) rebuildRoster() {
	project := m.CurrentProject()
	if project == nil {
		return
	}
	actingID := ""
	if u := m.AppState.CurrentUser(); u != nil {
		actingID = u.Identity()
	}
	entries := roster.Build(m.AppState.Users(), project, actingID)
	m.RosterState.SetEntries(entries)

	hadChanges := m.RosterState.Selection().HasChanges()
	if m.RosterState.Selection().SyncWith(project.ID, len(project.Members), len(project.PendingInvites())) && hadChanges {
		m.NotificationState.Add(state.LevelInfo, "Member list changed, selection cleared")
	}
}
