package components

import (
	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/tui/theme"
)

const cardTitleMaxLength = 30

// RenderCard renders a single card
//
//	┌─────────────────────┐
//	│ {Card Title}        │
//	│ @assignee  due date │
//	└─────────────────────┘
//
// This has a fixed width and height so columns line up.
func RenderCard(card *models.Card, selected bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	title := card.Title
	if len(title) > cardTitleMaxLength {
		title = title[:cardTitleMaxLength] + "…"
	}
	titleLine := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(title)

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))

	assignee := card.Assignee
	if assignee == "" {
		assignee = models.Unassigned
	}
	meta := "@" + assignee
	if card.DueDate != nil {
		meta += "  " + card.DueDate.Format("Jan 2")
	}
	metaLine := metaStyle.Render(meta)

	content := titleLine + "\n" + metaLine

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}
