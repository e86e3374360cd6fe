package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/tui/components"
	"github.com/avelezt/lanes/internal/tui/state"
	"github.com/avelezt/lanes/internal/tui/theme"
)

// inlineNotification returns the notification content for the tab bar,
// or "" when there is nothing to show.
func (m Model) inlineNotification() string {
	n, ok := m.NotificationState.First()
	if !ok {
		return ""
	}
	if n.Level == state.LevelError {
		return components.ErrorBannerStyle.Render(n.Message)
	}
	return components.InfoBannerStyle.Render(n.Message)
}

// viewBoard renders the base board view: space tabs, visible columns, and
// the status bar.
func (m Model) viewBoard() string {
	b := m.AppState.Board()

	// Space tabs from actual space data
	var tabs []string
	for _, project := range m.AppState.Projects() {
		tabs = append(tabs, project.Name)
	}
	if len(tabs) == 0 {
		tabs = []string{"No Spaces"}
	}
	tabBar := components.RenderTabs(tabs, m.AppState.SelectedProject(), m.UiState.Width(), m.inlineNotification())

	var boardView string
	if b == nil || len(b.Columns()) == 0 {
		boardView = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(1, 2).
			Render("No columns yet.")
	} else {
		boardView = m.renderColumns()
	}

	userName := ""
	if u := m.AppState.CurrentUser(); u != nil {
		userName = u.DisplayName()
	}
	columnCount := 0
	if b != nil {
		columnCount = len(b.Columns())
	}
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:       m.UiState.Width(),
		UserName:    userName,
		CardCount:   m.AppState.TotalCardCount(),
		ColumnCount: columnCount,
		Filter:      m.AppState.AssigneeFilter(),
	})

	// Build content (everything except footer)
	content := lipgloss.JoinVertical(lipgloss.Left, tabBar, boardView, "")

	// Constrain content to fit terminal height, leaving room for footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.UiState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// renderColumns renders the visible slice of the board's columns with
// horizontal scroll indicators.
func (m Model) renderColumns() string {
	b := m.AppState.Board()
	cols := b.Columns()

	endIdx := min(m.UiState.ViewportOffset()+m.UiState.ViewportSize(), len(cols))
	visible := cols[m.UiState.ViewportOffset():endIdx]

	columnHeight := m.UiState.ContentHeight()

	var rendered []string
	for i := range visible {
		col := &visible[i]
		globalIndex := m.UiState.ViewportOffset() + i
		isSelected := globalIndex == m.UiState.SelectedColumn()

		selectedCardIdx := -1
		if isSelected {
			selectedCardIdx = m.UiState.SelectedCard()
		}

		cards := m.AppState.VisibleCards(col)
		scrollOffset := m.UiState.CardScrollOffset(col.Key())
		rendered = append(rendered, components.RenderColumn(col, cards, isSelected, selectedCardIdx, columnHeight, scrollOffset))
	}

	indicatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	left, right := " ", " "
	if m.UiState.ViewportOffset() > 0 {
		left = indicatorStyle.Render("◀")
	}
	if endIdx < len(cols) {
		right = indicatorStyle.Render("▶")
	}

	columnsView := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", columnsView, " ", right)
}
