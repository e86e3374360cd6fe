package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/tui/theme"
)

// StatusBarProps carries the data shown in the status bar.
type StatusBarProps struct {
	Width       int
	UserName    string
	CardCount   int
	ColumnCount int
	Filter      string
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: user and board summary. Right side: help hint.
func RenderStatusBar(props StatusBarProps) string {
	left := fmt.Sprintf("%s  |  %d columns  |  %d cards", props.UserName, props.ColumnCount, props.CardCount)
	if props.Filter != "" {
		left += fmt.Sprintf("  |  filter: @%s", props.Filter)
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(left)
	rightRendered := style.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
