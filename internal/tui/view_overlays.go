package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/roster"
	"github.com/avelezt/lanes/internal/tui/components"
	"github.com/avelezt/lanes/internal/tui/layers"
	"github.com/avelezt/lanes/internal/tui/state"
	"github.com/avelezt/lanes/internal/tui/theme"
)

func (m Model) centered(content string) *lipgloss.Layer {
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

// renderLoginLayer renders the email/OTP/signup flow as a centered modal.
func (m Model) renderLoginLayer() *lipgloss.Layer {
	fs := m.FormState

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var body string
	switch {
	case fs.LoginStage == state.StageBusy:
		body = subtleStyle.Render("Working...")
	case fs.LoginForm != nil:
		body = fs.LoginForm.View()
	default:
		body = subtleStyle.Render("Loading...")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Lanes"),
		subtleStyle.Render("Sign in to your workspace"),
		"",
		body,
	)

	box := components.FormBoxStyle.Width(50).Render(content)
	return m.centered(box)
}

// renderHelpLayer renders the keyboard shortcuts help screen.
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(m.generateHelpText())
	return m.centered(helpBox)
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	viewKey := km.ViewCard
	if viewKey == " " {
		viewKey = "space"
	}
	return fmt.Sprintf(`LANES - Keyboard Shortcuts

CARDS
  %s     Add new card
  %s     Edit selected card
  %s     Delete selected card
  %s     View card details
  %s     Move card to previous column
  %s     Move card to next column
  %s     Move card up in column
  %s     Move card down in column

COLUMNS
  %s     Create new column
  %s     Rename current column
  %s     Delete current column
  %s     Move column left
  %s     Move column right

NAVIGATION
  %s     Move to previous column
  %s     Move to next column
  %s     Move to previous card
  %s     Move to next card

SPACES
  %s     Switch to previous space
  %s     Switch to next space
  %s     Create new space

OTHER
  %s     Manage invites
  %s     Filter by assignee
  %s     Refresh from server
  %s     Show this help
  %s     Log out
  %s     Quit

Press any key to close`,
		km.AddCard,
		km.EditCard,
		km.DeleteCard,
		viewKey,
		km.MoveCardLeft,
		km.MoveCardRight,
		km.MoveCardUp,
		km.MoveCardDown,
		km.CreateColumn,
		km.RenameColumn,
		km.DeleteColumn,
		km.MoveColumnLeft,
		km.MoveColumnRight,
		km.PrevColumn,
		km.NextColumn,
		km.PrevCard,
		km.NextCard,
		km.PrevSpace,
		km.NextSpace,
		km.CreateSpace,
		km.Invites,
		km.FilterAssignee,
		km.Refresh,
		km.ShowHelp,
		km.Logout,
		km.Quit,
	)
}

// renderCardFormLayer renders the card creation/edit form.
func (m Model) renderCardFormLayer() *lipgloss.Layer {
	fs := m.FormState
	if fs.CardForm == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	title := "Create Card"
	boxStyle := components.CreateBoxStyle
	if fs.EditingCard >= 0 {
		title = "Edit Card"
		boxStyle = components.EditBoxStyle
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		"",
		fs.CardForm.View(),
	)
	return m.centered(boxStyle.Width(60).Render(content))
}

// renderColumnFormLayer renders the column name input dialog.
func (m Model) renderColumnFormLayer() *lipgloss.Layer {
	fs := m.FormState
	if fs.ColumnForm == nil {
		return nil
	}

	boxStyle := components.CreateBoxStyle
	if fs.RenamingColumn != "" {
		boxStyle = components.EditBoxStyle
	}
	return m.centered(boxStyle.Width(50).Render(fs.ColumnForm.View()))
}

// renderProjectFormLayer renders the space creation form.
func (m Model) renderProjectFormLayer() *lipgloss.Layer {
	fs := m.FormState
	if fs.ProjectForm == nil {
		return nil
	}
	return m.centered(components.CreateBoxStyle.Width(55).Render(fs.ProjectForm.View()))
}

// renderDeleteCardConfirmLayer renders the card deletion confirmation.
func (m Model) renderDeleteCardConfirmLayer() *lipgloss.Layer {
	card := m.CurrentCard()
	if card == nil {
		return nil
	}

	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("Delete card '%s'?", card.Title),
		"",
		subtleStyle.Render("y: delete    n/esc: cancel"),
	)
	return m.centered(components.DeleteConfirmBoxStyle.Width(50).Render(content))
}

// renderDeleteColumnLayer renders the column deletion target picker.
func (m Model) renderDeleteColumnLayer() *lipgloss.Layer {
	fs := m.FormState
	if fs.TargetForm == nil {
		return nil
	}
	return m.centered(components.DeleteConfirmBoxStyle.Width(50).Render(fs.TargetForm.View()))
}

// renderCardViewLayer renders the full card detail popup with the markdown
// description rendered by glamour.
func (m Model) renderCardViewLayer() *lipgloss.Layer {
	card := m.CurrentCard()
	if card == nil {
		return nil
	}

	width := min(70, max(m.UiState.Width()-10, 30))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var meta []string
	meta = append(meta, "column: "+card.Status)
	if card.Assignee != "" {
		meta = append(meta, "@"+card.Assignee)
	}
	if card.DueDate != nil {
		meta = append(meta, "due "+card.DueDate.Format("Jan 2, 2006"))
	}

	description := components.RenderDescription(components.DescriptionProps{
		Description: card.Description,
		Width:       width - 4,
	})

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(card.Title),
		subtleStyle.Render(strings.Join(meta, "  ")),
		"",
		description,
		"",
		subtleStyle.Render("Press any key to close"),
	)
	return m.centered(components.FormBoxStyle.Width(width).Render(content))
}

// renderRosterLayer renders the invite picker: the classified roster with
// the staged invite/revoke selection.
func (m Model) renderRosterLayer() *lipgloss.Layer {
	rs := m.RosterState

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create))
	removedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger))

	var lines []string
	lines = append(lines, titleStyle.Render("Manage Members"))

	filterLine := "filter: " + rs.Filter()
	if rs.Filter() == "" {
		filterLine = subtleStyle.Render("type to filter")
	}
	lines = append(lines, filterLine, "")

	entries := rs.FilteredEntries()
	if len(entries) == 0 {
		lines = append(lines, subtleStyle.Render("Nobody matches"))
	}

	for i, entry := range entries {
		cursor := "  "
		if i == rs.Cursor() {
			cursor = "> "
		}
		lines = append(lines, cursor+m.rosterLine(entry))
	}

	lines = append(lines, "")
	if rs.Submitting() {
		lines = append(lines, subtleStyle.Render("Sending..."))
	} else {
		lines = append(lines, subtleStyle.Render("space: toggle    enter: apply    esc: cancel"))
	}
	if rs.Selection().HasChanges() {
		lines = append(lines, selectedStyle.Render("+ staged invite")+"  "+removedStyle.Render("- staged removal"))
	}

	content := strings.Join(lines, "\n")
	return m.centered(components.RosterBoxStyle.Width(56).Render(content))
}

// rosterLine renders one roster entry with its checkbox and status tag.
func (m Model) rosterLine(entry roster.Entry) string {
	sel := m.RosterState.Selection()
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	addStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create))
	removeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger))

	label := entry.Name
	if entry.Email != "" && entry.Email != entry.Name {
		label += subtleStyle.Render(" <" + entry.Email + ">")
	}

	switch {
	case entry.Status == roster.StatusOwner:
		return "[*] " + label + subtleStyle.Render(" (owner)")
	case sel.PendingAdd(entry.ID):
		return addStyle.Render("[+] ") + label
	case sel.PendingRemove(entry.ID):
		return removeStyle.Render("[-] ") + label
	case entry.Status == roster.StatusMember:
		return "[x] " + label
	case entry.Status == roster.StatusInvited:
		return "[x] " + label + subtleStyle.Render(" (invited)")
	default:
		return "[ ] " + label
	}
}

// renderFilterPickerLayer renders the assignee filter picker.
func (m Model) renderFilterPickerLayer() *lipgloss.Layer {
	options := m.filterOptions()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var lines []string
	lines = append(lines, titleStyle.Render("Filter by Assignee"), "")

	if len(options) == 0 {
		lines = append(lines, subtleStyle.Render("No cards on the board"))
	}
	for i, key := range options {
		label := key
		if key == models.Unassigned {
			label = "Unassigned"
		}
		marker := "  "
		if m.AppState.AssigneeFilter() == key {
			marker = "* "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s", marker, i+1, label))
	}

	lines = append(lines, "", subtleStyle.Render("1-9: pick    c: clear    esc: close"))
	content := strings.Join(lines, "\n")
	return m.centered(components.FormBoxStyle.Width(44).Render(content))
}
