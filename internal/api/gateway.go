package api

import (
	"context"

	"github.com/avelezt/lanes/internal/models"
)

// Gateway is the only surface the board, roster, and TUI call to reach the
// Spaces server. Every column mutation sends a full replacement value
// (never a delta) and returns the authoritative updated column set, which
// the caller must adopt wholesale: the server is the arbiter of final
// column and card shape and applies its own order normalization.
type Gateway interface {
	// Projects
	FetchProjects(ctx context.Context) ([]models.Project, error)
	FetchProject(ctx context.Context, projectID string) (*models.Project, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, string, error)

	// Columns. Each call returns the full refreshed column set plus the
	// server's success message (empty when it sent none).
	FetchColumns(ctx context.Context, projectID string) ([]models.Column, error)
	ReplaceColumnCards(ctx context.Context, projectID, columnName string, cards []models.Card) ([]models.Column, string, error)
	SetColumnOrder(ctx context.Context, projectID, columnName string, order int) ([]models.Column, string, error)
	RenameColumn(ctx context.Context, projectID, columnName, newName string) ([]models.Column, string, error)
	CreateColumn(ctx context.Context, projectID string, req CreateColumnRequest) ([]models.Column, string, error)
	DeleteColumn(ctx context.Context, projectID, columnName, targetColumn string) ([]models.Column, string, error)

	// Members
	FetchUsers(ctx context.Context) ([]models.User, error)
	InviteMembers(ctx context.Context, projectID string, emails []string) (*MemberResult, error)
	RevokeInvites(ctx context.Context, projectID string, emails []string) (*MemberResult, error)

	// Auth
	SendSignupOTP(ctx context.Context, email string) (string, error)
	VerifySignupOTP(ctx context.Context, email, otp string) (*Credentials, error)
	CheckUser(ctx context.Context, email string) (bool, error)
	SendLoginOTP(ctx context.Context, email, password string) (string, error)
	VerifyLoginOTP(ctx context.Context, email, otp string) (*Credentials, error)
	UpdateProfile(ctx context.Context, req ProfileRequest) (*models.User, error)
	Logout(ctx context.Context) error
}

// CreateProjectRequest carries the fields for creating a space.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BoardType   string `json:"boardType,omitempty"`
	Status      string `json:"status,omitempty"`
}

// CreateColumnRequest carries the fields for creating a column. Order and
// Cards are optional; the server appends and normalizes when they are
// omitted.
type CreateColumnRequest struct {
	Name  string        `json:"name"`
	Order int           `json:"order,omitempty"`
	Cards []models.Card `json:"cards,omitempty"`
}

// ProfileRequest carries the profile-setup fields.
type ProfileRequest struct {
	FullName  string `json:"fullName,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Password  string `json:"password,omitempty"`
}

// Credentials is a successful OTP verification: the bearer token and the
// authenticated user.
type Credentials struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// MemberResult is the outcome of an invite or revoke call: the server's
// per-category counts plus its message, both possibly empty.
type MemberResult struct {
	Results map[string]any `json:"results,omitempty"`
	Message string         `json:"message,omitempty"`
}

// TokenSource supplies the bearer token for authorized calls. The session
// store implements it; requests made before login carry no token.
type TokenSource interface {
	Token() string
}
