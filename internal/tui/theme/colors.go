// Package theme holds the color palette used across the TUI.
package theme

const (
	Background = "#1a1b26"
	Highlight  = "#bb9af7"
	Subtle     = "240"
	Normal     = "#c0caf5"
	Create     = "#9ece6a"
	Edit       = "#7aa2f7"
	Danger     = "#f7768e"

	SelectedBorder = "#bb9af7"
	SelectedBg     = "#292e42"
	CardBg         = "#24283b"

	InfoFg  = "#7aa2f7"
	InfoBg  = "#1f2335"
	ErrorFg = "#f7768e"
	ErrorBg = "#2d202a"
)
