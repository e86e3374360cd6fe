package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
)

// CreateTargetColumnForm creates a huh form that picks the destination column
// for cards left in a column that is about to be deleted.
func CreateTargetColumnForm(
	deletingName string,
	cardCount int,
	candidates []string,
	target *string,
) *huh.Form {
	options := make([]huh.Option[string], 0, len(candidates))
	for _, name := range candidates {
		options = append(options, huh.NewOption(name, name))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("target").
			Title(fmt.Sprintf("Delete '%s'", deletingName)).
			Description(fmt.Sprintf("Move its %d card(s) to:", cardCount)).
			Options(options...).
			Value(target),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
