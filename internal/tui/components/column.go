package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/tui/theme"
)

// RenderColumn renders a complete column with its title and cards.
// This is a pure, reusable component that composes individual card components.
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// Parameters:
//   - column: the column to render
//   - cards: the cards to show, already filtered
//   - selected: whether this column is currently selected
//   - selectedCardIdx: index of selected card in this column (-1 if not this column)
//   - height: fixed height for the column box
//   - scrollOffset: index of first visible card
func RenderColumn(column *models.Column, cards []models.Card, selected bool, selectedCardIdx int, height int, scrollOffset int) string {
	header := fmt.Sprintf("%s (%d)", column.Name, len(cards))
	content := TitleStyle.Render(header) + "\n"

	if len(cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No cards")
	} else {
		// Overhead: border and padding (3) + header (1) + indicator (1)
		const columnOverhead = 5
		availableHeight := height - columnOverhead
		maxVisibleCards := max(availableHeight/CardHeight, 1)

		indicatorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Align(lipgloss.Center)

		// Always reserve space for the top indicator line
		if scrollOffset > 0 {
			content += indicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(scrollOffset+maxVisibleCards, len(cards))
		visibleCards := cards[scrollOffset:endIdx]

		for i := range visibleCards {
			actualIdx := scrollOffset + i
			isCardSelected := selected && actualIdx == selectedCardIdx
			content += RenderCard(&visibleCards[i], isCardSelected) + "\n"
		}

		// Push the bottom indicator flush with the bottom of the box
		usedLines := 2 + len(visibleCards)*CardHeight
		if endIdx < len(cards) {
			padding := max(height-3-usedLines-1, 0)
			content += strings.Repeat("\n", padding)
			content += indicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}

	return style.Height(height - 2).Render(content)
}
