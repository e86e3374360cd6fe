package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// CreateEmailForm creates the first stage of the login flow: the email prompt.
func CreateEmailForm(email *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return errors.New("enter a valid email address")
				}
				return nil
			}).
			Value(email),
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateOTPForm creates the second stage of the login flow: the one-time code.
func CreateOTPForm(email string, otp *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("otp").
			Title("One-time code").
			Description("Sent to " + email).
			Placeholder("123456").
			CharLimit(6).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) != 6 {
					return errors.New("the code is 6 digits")
				}
				return nil
			}).
			Value(otp),
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateSignupForm creates the profile stage shown when the email has no account.
func CreateSignupForm(firstName, lastName *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("first").
			Title("First name").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("first name is required")
				}
				return nil
			}).
			Value(firstName),

		huh.NewInput().
			Key("last").
			Title("Last name").
			Value(lastName),
	}
	return huh.NewForm(huh.NewGroup(fields...))
}
