package huhforms

import (
	"errors"
	"strings"
	"time"

	"charm.land/huh/v2"
)

// AssigneeOption pairs a display name with the value stored on the card.
type AssigneeOption struct {
	Label string
	Value string
}

// CreateCardForm creates a huh form for adding or editing a card.
// The form uses pointers to update values in place.
func CreateCardForm(
	title *string,
	description *string,
	dueDate *string,
	assignee *string,
	assignees []AssigneeOption,
	confirm *bool,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter card title...").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("title is required")
				}
				return nil
			}).
			Value(title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter card description (markdown supported)...").
			CharLimit(5000).
			Lines(4).
			Value(description),
	)

	fields = append(fields,
		huh.NewInput().
			Key("due").
			Title("Due Date (YYYY-MM-DD, optional)").
			Placeholder("2026-01-31").
			Validate(validateDueDate).
			Value(dueDate),
	)

	options := make([]huh.Option[string], 0, len(assignees)+1)
	options = append(options, huh.NewOption("Unassigned", ""))
	for _, a := range assignees {
		options = append(options, huh.NewOption(a.Label, a.Value))
	}
	fields = append(fields,
		huh.NewSelect[string]().
			Key("assignee").
			Title("Assignee").
			Options(options...).
			Value(assignee),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this card?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(formKeyMap()).WithShowHelp(false)
}

func validateDueDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return err
}
