// Package huhforms builds the huh forms used by the TUI.
package huhforms

import "charm.land/huh/v2"

// CreateColumnForm creates a huh form for adding or renaming a column.
// The form contains a single input field for the column name.
func CreateColumnForm(
	name *string,
	isRename bool,
) *huh.Form {
	title := "New Column Name"
	if isRename {
		title = "Rename Column"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(title).
			Placeholder("Enter column name...").
			Value(name),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
