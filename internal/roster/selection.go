package roster

// Selection stages pending invite/revoke choices before one batched
// submission. An available entry toggles through the add set, a member or
// invited entry through the remove set; the two sets are mutually
// exclusive per entry and the owner is never toggleable. Selections are
// reset whenever the underlying project identity, member count, or invite
// count changes, since the server state has moved underneath them.
type Selection struct {
	adds    map[string]bool
	removes map[string]bool

	// fingerprint of the project state the selection was made against
	projectID   string
	memberCount int
	inviteCount int
}

// NewSelection creates an empty selection bound to a project snapshot.
func NewSelection(projectID string, memberCount, inviteCount int) *Selection {
	return &Selection{
		adds:        make(map[string]bool),
		removes:     make(map[string]bool),
		projectID:   projectID,
		memberCount: memberCount,
		inviteCount: inviteCount,
	}
}

// Toggle flips the pending state for an entry according to its status.
// Owner entries are ignored.
func (s *Selection) Toggle(entry Entry) {
	if entry.ID == "" || entry.Status == StatusOwner {
		return
	}
	if entry.Status == StatusAvailable {
		delete(s.removes, entry.ID)
		if s.adds[entry.ID] {
			delete(s.adds, entry.ID)
		} else {
			s.adds[entry.ID] = true
		}
		return
	}
	delete(s.adds, entry.ID)
	if s.removes[entry.ID] {
		delete(s.removes, entry.ID)
	} else {
		s.removes[entry.ID] = true
	}
}

// PendingAdd reports whether the entry is staged for invitation.
func (s *Selection) PendingAdd(id string) bool {
	return s.adds[id]
}

// PendingRemove reports whether the entry is staged for removal.
func (s *Selection) PendingRemove(id string) bool {
	return s.removes[id]
}

// HasChanges reports whether anything is staged.
func (s *Selection) HasChanges() bool {
	return len(s.adds) > 0 || len(s.removes) > 0
}

// Clear drops all staged choices; called after a successful submission's
// data refresh.
func (s *Selection) Clear() {
	s.adds = make(map[string]bool)
	s.removes = make(map[string]bool)
}

// SyncWith drops all staged choices when the project snapshot has changed
// out from under the selection. Returns true when a reset happened.
func (s *Selection) SyncWith(projectID string, memberCount, inviteCount int) bool {
	if s.projectID == projectID && s.memberCount == memberCount && s.inviteCount == inviteCount {
		return false
	}
	s.projectID = projectID
	s.memberCount = memberCount
	s.inviteCount = inviteCount
	s.Clear()
	return true
}

// Plan is the submission derived from a selection: at most one invite call
// with the combined add emails and one revoke call with the combined
// remove emails.
type Plan struct {
	InviteEmails []string
	RevokeEmails []string
}

// IsEmpty reports whether the plan needs no API calls.
func (p *Plan) IsEmpty() bool {
	return len(p.InviteEmails) == 0 && len(p.RevokeEmails) == 0
}

// BuildPlan aggregates normalized emails for every staged entry. The whole
// submission is rejected when any selected entry lacks a resolvable email:
// the API invites and revokes by email, never by id alone.
func BuildPlan(entries []Entry, sel *Selection) (*Plan, error) {
	plan := &Plan{}
	for _, entry := range entries {
		switch {
		case sel.PendingAdd(entry.ID):
			email := entry.NormalizedEmail()
			if email == "" {
				return nil, ErrMissingEmail
			}
			plan.InviteEmails = append(plan.InviteEmails, email)
		case sel.PendingRemove(entry.ID):
			email := entry.NormalizedEmail()
			if email == "" {
				return nil, ErrMissingEmail
			}
			plan.RevokeEmails = append(plan.RevokeEmails, email)
		}
	}
	if plan.IsEmpty() {
		return nil, ErrNothingSelected
	}
	return plan, nil
}
