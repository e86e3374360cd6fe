// Package components provides reusable UI components and styles.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/avelezt/lanes/internal/tui/theme"
)

// ColumnContentWidth is the inner width of a board column.
const ColumnContentWidth = 36

// CardHeight is the fixed height of a card on the board.
const CardHeight = 5

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive space tabs
	TabStyle = lipgloss.NewStyle().
			Border(tabBorder, true).
			Padding(0, 1).
			Foreground(lipgloss.Color(theme.Subtle))

	// ActiveTabStyle defines the selected space tab
	ActiveTabStyle = lipgloss.NewStyle().
			Border(activeTabBorder, true).
			Padding(0, 1).
			Foreground(lipgloss.Color(theme.Highlight)).
			Bold(true)

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle))

	// ColumnStyle defines the appearance of board columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1).
			Width(ColumnContentWidth + 2)

	// SelectedColumnStyle highlights the selected column
	SelectedColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color(theme.SelectedBorder))

	// CardStyle defines the appearance of individual cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1).
			Width(ColumnContentWidth - 2)

	// SelectedCardStyle highlights the selected card
	SelectedCardStyle = CardStyle.
				BorderForeground(lipgloss.Color(theme.SelectedBorder)).
				Background(lipgloss.Color(theme.SelectedBg))

	// TitleStyle defines the appearance of titles (column names, popup headers)
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight))

	// SubtleStyle is used for secondary text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle))

	// FormBoxStyle defines the base style for card forms (purple border)
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2)

	// CreateBoxStyle defines the base style for creation dialogs (green border)
	CreateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Create)).
			Padding(1, 2)

	// EditBoxStyle defines the base style for edit dialogs (blue border)
	EditBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Edit)).
			Padding(1, 2)

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.Danger)).
				Padding(1, 2)

	// HelpBoxStyle defines the base style for the help screen (blue border)
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Edit)).
			Padding(1, 2)

	// RosterBoxStyle defines the base style for the invite picker (purple border)
	RosterBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2)

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.InfoFg)).
			Background(lipgloss.Color(theme.InfoBg)).
			Padding(0, 1)

	// ErrorBannerStyle defines the appearance of error notifications
	ErrorBannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg)).
			Bold(true).
			Padding(0, 1)
)
