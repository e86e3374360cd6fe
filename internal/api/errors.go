package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/avelezt/lanes/internal/board"
)

// Validation errors caught before any network call
var (
	ErrInvalidEmail     = errors.New("a valid email address is required")
	ErrInvalidOTP       = errors.New("email and verification code are required")
	ErrNoEmails         = errors.New("no email addresses to send")
	ErrEmptyProjectName = errors.New("space name is required")
	ErrEmptyResponse    = errors.New("server returned an empty response")
)

// Error is a rejected API call. Message holds whatever the server said,
// empty when it said nothing useful.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server responded %d", e.Status)
}

// newError builds an *Error from a non-2xx response body, extracting the
// server's message/error field when the body is JSON.
func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	message := ""
	if json.Unmarshal(body, &payload) == nil {
		message = payload.Message
		if message == "" {
			message = payload.Err
		}
	}
	return &Error{Status: status, Message: strings.TrimSpace(message)}
}

// validationErrs are the local pre-flight rejections. Their messages are
// written for the user and surface verbatim through ErrorMessage.
var validationErrs = []error{
	ErrInvalidEmail,
	ErrInvalidOTP,
	ErrNoEmails,
	ErrEmptyProjectName,
	board.ErrEmptyColumnName,
	board.ErrDuplicateColumnName,
	board.ErrInvalidOrder,
	board.ErrColumnNotFound,
	board.ErrNoTargetColumn,
}

// ErrorMessage resolves the user-facing text for a failed call: the
// server's message when it provided one, local validation errors as
// themselves, the fallback for everything else (transport errors are not
// fit for the status bar).
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "Server is unreachable, try again shortly"
	}
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return fallback
}
