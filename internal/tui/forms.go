package tui

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/tui/state"
)

// updateForms routes messages to the active form. Forms need every message,
// not just key presses, so cursor blinking and field transitions work.
func (m Model) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	// ESC cancels any form
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForms()
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.ColumnFormMode:
		return m.updateColumnForm(msg)
	case state.CardFormMode:
		return m.updateCardForm(msg)
	case state.ProjectFormMode:
		return m.updateProjectForm(msg)
	case state.DeleteColumnConfirmMode:
		return m.updateTargetForm(msg)
	}
	return m, nil
}

func (m *Model) closeForms() {
	m.FormState.ClearColumnForm()
	m.FormState.ClearCardForm()
	m.FormState.ClearProjectForm()
	m.FormState.ClearTargetForm()
	m.UiState.SetMode(state.NormalMode)
}

// Column create/rename

func (m Model) updateColumnForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.ColumnForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := fs.ColumnForm.Update(msg)
	fs.ColumnForm = model.(*huh.Form)

	if fs.ColumnForm.State != huh.StateCompleted {
		return m, cmd
	}

	name := fs.ColumnName
	renaming := fs.RenamingColumn
	m.closeForms()

	b := m.AppState.Board()
	project := m.CurrentProject()
	if b == nil || project == nil {
		return m, nil
	}

	trimmed, err := board.ValidateColumnName(name, b.Columns(), renaming)
	if err != nil {
		m.NotificationState.Add(state.LevelError, columnNameError(err))
		return m, nil
	}

	if renaming == "" {
		return m, m.createColumnCmd(project.ID, api.CreateColumnRequest{Name: trimmed})
	}
	if trimmed == renaming {
		return m, nil
	}
	return m, m.renameColumnCmd(project.ID, renaming, trimmed)
}

func columnNameError(err error) string {
	switch {
	case errors.Is(err, board.ErrEmptyColumnName):
		return "Column name cannot be empty"
	case errors.Is(err, board.ErrDuplicateColumnName):
		return "A column with that name already exists"
	default:
		return "Invalid column name"
	}
}

// Card create/edit

func (m Model) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.CardForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := fs.CardForm.Update(msg)
	fs.CardForm = model.(*huh.Form)

	if fs.CardForm.State != huh.StateCompleted {
		return m, cmd
	}

	confirmed := fs.CardForm.GetBool("confirm")
	title := strings.TrimSpace(fs.CardTitle)
	description := fs.CardDescription
	dueRaw := strings.TrimSpace(fs.CardDueDate)
	assignee := fs.CardAssignee
	editing := fs.EditingCard
	m.closeForms()

	if !confirmed || title == "" {
		return m, nil
	}

	b := m.AppState.Board()
	col := m.CurrentColumn()
	project := m.CurrentProject()
	if b == nil || col == nil || project == nil {
		return m, nil
	}

	card := models.Card{
		Title:       title,
		Description: description,
		Status:      col.Name,
		Assignee:    assignee,
	}
	if dueRaw != "" {
		if due, err := time.Parse("2006-01-02", dueRaw); err == nil {
			card.DueDate = &due
		}
	}

	snapshot := b.Snapshot()
	next := append([]models.Card(nil), col.Cards...)
	if editing >= 0 && editing < len(next) {
		card.Status = next[editing].Status
		next[editing] = card
	} else {
		next = append(next, card)
	}

	updated := b.Snapshot()
	updated[m.UiState.SelectedColumn()].Cards = next
	b.ReplaceColumns(updated)
	m.clampAfterBoardChange()

	version := b.Begin()
	return m, m.replaceCardsCmd(project.ID, col.Name, next, version, snapshot)
}

// Space creation

func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.ProjectForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := fs.ProjectForm.Update(msg)
	fs.ProjectForm = model.(*huh.Form)

	if fs.ProjectForm.State != huh.StateCompleted {
		return m, cmd
	}

	confirmed := fs.ProjectForm.GetBool("confirm")
	name := strings.TrimSpace(fs.ProjectName)
	description := fs.ProjectDescription
	m.closeForms()

	if !confirmed {
		return m, nil
	}
	if name == "" {
		m.NotificationState.Add(state.LevelError, "Space name cannot be empty")
		return m, nil
	}

	return m, m.createProjectCmd(api.CreateProjectRequest{
		Name:        name,
		Description: description,
	})
}

// Destination column picker for deleting a non-empty column

func (m Model) updateTargetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.TargetForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := fs.TargetForm.Update(msg)
	fs.TargetForm = model.(*huh.Form)

	if fs.TargetForm.State != huh.StateCompleted {
		return m, cmd
	}

	deleting := fs.DeletingColumn
	target := fs.TargetColumn
	m.closeForms()

	project := m.CurrentProject()
	if project == nil || deleting == "" || target == "" {
		return m, nil
	}

	return m, m.deleteColumnCmd(project.ID, deleting, target)
}
