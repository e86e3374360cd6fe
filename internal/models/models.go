package models

import (
	"strings"
	"time"
)

// Unassigned is the sentinel assignee value for cards nobody owns.
const Unassigned = "unassigned"

// Project represents a space: a single kanban board with an owner,
// members, pending invites, and ordered columns.
type Project struct {
	ID            string   `json:"_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Status        string   `json:"status,omitempty"`
	BoardType     string   `json:"boardType,omitempty"`
	CurrentSprint string   `json:"currentSprint,omitempty"`
	Owner         Ref      `json:"owner,omitempty"`
	Members       []Ref    `json:"members,omitempty"`
	Invites       []Ref    `json:"invites,omitempty"`
	PendingInvite []Ref    `json:"pendingInvites,omitempty"`
	Columns       []Column `json:"columns,omitempty"`
}

// PendingInvites returns the project's pending invite records. The server
// has emitted them under both "invites" and "pendingInvites" depending on
// endpoint, so the populated field wins.
func (p *Project) PendingInvites() []Ref {
	if len(p.Invites) > 0 {
		return p.Invites
	}
	return p.PendingInvite
}

// Column is a named, ordered lane of cards. Order is a dense 1-based rank
// among the project's columns. The server may omit the id, so lookups fall
// back to the name (see Key).
type Column struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Order int    `json:"order,omitempty"`
	Cards []Card `json:"cards"`
}

// Key returns the column's stable lookup key: its id when the server
// assigned one, otherwise its name.
func (c *Column) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Name
}

// Card is a task on the board. Status mirrors the name of the column that
// currently contains the card; moving a card across columns rewrites it.
type Card struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee,omitempty"`
}

// AssigneeKey returns the card's assignee id, or the Unassigned sentinel.
func (c *Card) AssigneeKey() string {
	if c.Assignee == "" {
		return Unassigned
	}
	return c.Assignee
}

// User is a workspace account. The server is loose about which identity
// and display fields it populates, so the struct carries the aliases the
// API has been observed to emit and resolves them through fallback chains.
type User struct {
	ID        string `json:"_id,omitempty" yaml:"_id,omitempty"`
	AltID     string `json:"id,omitempty" yaml:"id,omitempty"`
	UserID    string `json:"userId,omitempty" yaml:"userId,omitempty"`
	FullName  string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	UserEmail string `json:"userEmail,omitempty" yaml:"userEmail,omitempty"`
	Contact   string `json:"contactEmail,omitempty" yaml:"contactEmail,omitempty"`
	InviteTo  string `json:"inviteEmail,omitempty" yaml:"inviteEmail,omitempty"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	UserName  string `json:"userName,omitempty" yaml:"userName,omitempty"`
	Role      string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Identity resolves the user's stable identity key: explicit id fields in
// priority order, else email, else username.
func (u *User) Identity() string {
	for _, id := range []string{u.ID, u.AltID, u.UserID} {
		if id != "" {
			return id
		}
	}
	if u.Email != "" {
		return u.Email
	}
	if u.Username != "" {
		return u.Username
	}
	return u.UserName
}

// BestEmail returns the first populated email-ish field that actually
// looks like an address, trimmed. Empty when the user has none.
func (u *User) BestEmail() string {
	for _, candidate := range []string{u.Email, u.UserEmail, u.InviteTo, u.Contact, u.Username, u.UserName} {
		trimmed := strings.TrimSpace(candidate)
		if trimmed != "" && strings.Contains(trimmed, "@") {
			return trimmed
		}
	}
	return ""
}

// DisplayName resolves the label shown for the user: full name, then
// first+last, then email, then username, then the raw identity key.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	pieces := make([]string, 0, 2)
	if u.FirstName != "" {
		pieces = append(pieces, u.FirstName)
	}
	if u.LastName != "" {
		pieces = append(pieces, u.LastName)
	}
	if len(pieces) > 0 {
		return strings.Join(pieces, " ")
	}
	if u.Email != "" {
		return u.Email
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Identity()
}

// NormalizeEmail canonicalizes an email for set membership: trimmed and
// lower-cased. Invite records key pending invites by this form.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
