// Package roster derives, for every workspace user, a classification of
// their relationship to one project (owner, member, invited, or available)
// and stages pending invite/revoke selections for one batched submission.
// Entries are recomputed from scratch whenever the underlying project,
// members, invites, or user list changes; nothing here is persisted.
package roster

import (
	"strings"

	"github.com/avelezt/lanes/internal/models"
)

// Status is a workspace user's relationship to a project. Classification
// is a strict priority order: owner beats member beats invited beats
// available, so a user who is both the resolved owner and the target of a
// stray invite record still classifies as owner.
type Status int

const (
	StatusAvailable Status = iota
	StatusInvited
	StatusMember
	StatusOwner
)

func (s Status) String() string {
	switch s {
	case StatusOwner:
		return "owner"
	case StatusMember:
		return "member"
	case StatusInvited:
		return "invited"
	default:
		return "available"
	}
}

// Entry is one workspace user's derived roster row.
type Entry struct {
	ID     string // resolved identity key
	Email  string // raw email, possibly empty
	Name   string // display label
	Status Status
	User   models.User
}

// NormalizedEmail returns the entry's email in canonical form.
func (e *Entry) NormalizedEmail() string {
	return models.NormalizeEmail(e.Email)
}

// OwnerID resolves the project owner's identity: the owner reference
// directly when it yields one, else the first member record whose role is
// "owner" (case-insensitive). Empty when neither resolves.
func OwnerID(project *models.Project) string {
	if project == nil {
		return ""
	}
	if id := project.Owner.ID(); id != "" {
		return id
	}
	for _, member := range project.Members {
		if strings.EqualFold(member.Role(), "owner") {
			if id := member.Target().ID(); id != "" {
				return id
			}
		}
	}
	return ""
}

// Build classifies every workspace user other than the acting user against
// the project. Users whose identity cannot be resolved at all are dropped;
// everyone else gets exactly one status.
func Build(users []models.User, project *models.Project, actingID string) []Entry {
	ownerID := OwnerID(project)

	memberIDs := make(map[string]bool)
	inviteIDs := make(map[string]bool)
	inviteEmails := make(map[string]bool)
	if project != nil {
		for _, member := range project.Members {
			if id := member.Target().ID(); id != "" {
				memberIDs[id] = true
			}
		}
		// Invites may reference a user by id or by bare email before the
		// invitee has an account, so the index is keyed both ways.
		for _, invite := range project.PendingInvites() {
			if id := invite.Target().ID(); id != "" {
				inviteIDs[id] = true
			}
			if email := invite.Email(); email != "" {
				inviteEmails[email] = true
			}
		}
	}

	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		id := user.Identity()
		if id == "" || id == actingID {
			continue
		}

		email := strings.TrimSpace(user.BestEmail())
		normalized := models.NormalizeEmail(email)

		status := StatusAvailable
		switch {
		case ownerID != "" && id == ownerID:
			status = StatusOwner
		case memberIDs[id]:
			status = StatusMember
		case inviteIDs[id] || (normalized != "" && inviteEmails[normalized]):
			status = StatusInvited
		}

		entries = append(entries, Entry{
			ID:     id,
			Email:  email,
			Name:   user.DisplayName(),
			Status: status,
			User:   user,
		})
	}
	return entries
}
