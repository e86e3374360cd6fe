package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/tui/state"
	"github.com/avelezt/lanes/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: always show the base board with modal overlays
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.LoginMode:
		modalLayer = m.renderLoginLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	case state.CardFormMode:
		modalLayer = m.renderCardFormLayer()
	case state.ColumnFormMode:
		modalLayer = m.renderColumnFormLayer()
	case state.ProjectFormMode:
		modalLayer = m.renderProjectFormLayer()
	case state.DeleteCardConfirmMode:
		modalLayer = m.renderDeleteCardConfirmLayer()
	case state.DeleteColumnConfirmMode:
		modalLayer = m.renderDeleteColumnLayer()
	case state.CardViewMode:
		modalLayer = m.renderCardViewLayer()
	case state.InviteMode:
		modalLayer = m.renderRosterLayer()
	case state.FilterPickerMode:
		modalLayer = m.renderFilterPickerLayer()
	}

	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}
