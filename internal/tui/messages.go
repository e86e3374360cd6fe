package tui

import (
	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/models"
)

// projectsMsg carries the refreshed space list.
type projectsMsg struct {
	projects []models.Project
}

// projectRefreshedMsg carries one refetched space, typically after a
// membership change.
type projectRefreshedMsg struct {
	project *models.Project
}

// projectCreatedMsg reports a newly created space.
type projectCreatedMsg struct {
	project *models.Project
	message string
}

// usersMsg carries the refreshed user directory.
type usersMsg struct {
	users []models.User
}

// columnsMsg carries an authoritative column set from the server.
// When version is non-zero the set is adopted only if no gesture stamped a
// newer request, so a slow response can never overwrite the result of a
// later gesture. Zero means adopt unconditionally (refreshes).
type columnsMsg struct {
	projectID string
	version   uint64
	columns   []models.Column
	message   string
}

// boardErrMsg reports a failed board mutation. When snapshot is non-nil the
// board rolls back to it; when refetch is set the board is refetched instead
// because local state may be half-applied.
type boardErrMsg struct {
	err       error
	fallback  string
	projectID string
	snapshot  []models.Column
	refetch   bool
}

// inviteDoneMsg reports the outcome of the invite/revoke submission.
type inviteDoneMsg struct {
	results map[string]any
	message string
	err     error
}

// otpSentMsg reports that a one-time code was emailed.
type otpSentMsg struct {
	message string
	signup  bool
	err     error
}

// userCheckedMsg reports whether the entered email has an account.
type userCheckedMsg struct {
	exists bool
	err    error
}

// loggedInMsg reports the outcome of OTP verification.
type loggedInMsg struct {
	creds *api.Credentials
	err   error
}

// profileSavedMsg reports the outcome of a profile update during signup.
type profileSavedMsg struct {
	user *models.User
	err  error
}

// loggedOutMsg reports the outcome of logout.
type loggedOutMsg struct {
	err error
}

// errMsg reports a failure outside the board mutation paths.
type errMsg struct {
	err      error
	fallback string
}
