package roster

import (
	"errors"
	"slices"
	"testing"

	"github.com/avelezt/lanes/internal/models"
)

func user(id, email, name string) models.User {
	return models.User{ID: id, Email: email, FullName: name}
}

func memberRecord(id, role string) models.Ref {
	return models.Ref{
		Kind:  models.RefUser,
		User:  &models.User{Role: role},
		Inner: &models.Ref{Kind: models.RefRawID, Raw: id},
	}
}

func statusOf(entries []Entry, id string) (Status, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e.Status, true
		}
	}
	return 0, false
}

func TestOwnerID(t *testing.T) {
	t.Run("direct owner reference", func(t *testing.T) {
		p := &models.Project{Owner: models.RawRef("u1")}
		if got := OwnerID(p); got != "u1" {
			t.Errorf("OwnerID = %q, want %q", got, "u1")
		}
	})

	t.Run("falls back to owner-role member", func(t *testing.T) {
		p := &models.Project{
			Members: []models.Ref{
				memberRecord("u2", "member"),
				memberRecord("u3", "Owner"),
			},
		}
		if got := OwnerID(p); got != "u3" {
			t.Errorf("OwnerID = %q, want %q", got, "u3")
		}
	})

	t.Run("nil project", func(t *testing.T) {
		if got := OwnerID(nil); got != "" {
			t.Errorf("OwnerID(nil) = %q, want empty", got)
		}
	})
}

func TestBuildClassification(t *testing.T) {
	project := &models.Project{
		ID:    "p1",
		Owner: models.RawRef("owner-id"),
		Members: []models.Ref{
			models.RawRef("member-id"),
		},
		Invites: []models.Ref{
			models.RawRef("invited-id"),
			models.RawRef("pending@example.com"),
		},
	}
	users := []models.User{
		user("owner-id", "owner@example.com", "Owner"),
		user("member-id", "member@example.com", "Member"),
		user("invited-id", "invited@example.com", "Invited"),
		user("by-email-id", "Pending@Example.com", "Invited By Email"),
		user("free-id", "free@example.com", "Free"),
		user("me", "me@example.com", "Acting User"),
	}

	entries := Build(users, project, "me")

	// The acting user never appears in their own roster.
	if _, ok := statusOf(entries, "me"); ok {
		t.Error("acting user appeared in the roster")
	}

	want := map[string]Status{
		"owner-id":    StatusOwner,
		"member-id":   StatusMember,
		"invited-id":  StatusInvited,
		"by-email-id": StatusInvited, // matched by normalized invite email
		"free-id":     StatusAvailable,
	}
	for id, wantStatus := range want {
		got, ok := statusOf(entries, id)
		if !ok {
			t.Errorf("entry %q missing from roster", id)
			continue
		}
		if got != wantStatus {
			t.Errorf("entry %q status = %v, want %v", id, got, wantStatus)
		}
	}
}

func TestBuildOwnerBeatsStrayInvite(t *testing.T) {
	// A stray invite record for the owner must not demote them.
	project := &models.Project{
		Owner:   models.RawRef("owner-id"),
		Invites: []models.Ref{models.RawRef("owner-id")},
	}
	entries := Build([]models.User{user("owner-id", "o@example.com", "O")}, project, "me")

	got, ok := statusOf(entries, "owner-id")
	if !ok {
		t.Fatal("owner missing from roster")
	}
	if got != StatusOwner {
		t.Errorf("owner status = %v, want StatusOwner", got)
	}
}

func TestBuildMemberBeatsInvite(t *testing.T) {
	project := &models.Project{
		Members: []models.Ref{models.RawRef("u1")},
		Invites: []models.Ref{models.RawRef("u1")},
	}
	entries := Build([]models.User{user("u1", "u1@example.com", "U")}, project, "me")

	got, _ := statusOf(entries, "u1")
	if got != StatusMember {
		t.Errorf("status = %v, want StatusMember", got)
	}
}

func TestBuildDropsUnresolvableUsers(t *testing.T) {
	entries := Build([]models.User{{}}, &models.Project{}, "me")
	if len(entries) != 0 {
		t.Errorf("Build kept %d unresolvable users, want 0", len(entries))
	}
}

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection("p1", 1, 0)
	available := Entry{ID: "a", Status: StatusAvailable}
	member := Entry{ID: "m", Status: StatusMember}
	invited := Entry{ID: "i", Status: StatusInvited}
	owner := Entry{ID: "o", Status: StatusOwner}

	sel.Toggle(available)
	if !sel.PendingAdd("a") {
		t.Error("available entry not staged for add")
	}
	sel.Toggle(available)
	if sel.PendingAdd("a") {
		t.Error("second toggle did not unstage the add")
	}

	sel.Toggle(member)
	if !sel.PendingRemove("m") {
		t.Error("member entry not staged for removal")
	}
	sel.Toggle(invited)
	if !sel.PendingRemove("i") {
		t.Error("invited entry not staged for removal")
	}

	sel.Toggle(owner)
	if sel.PendingAdd("o") || sel.PendingRemove("o") {
		t.Error("owner must never be toggleable")
	}

	if !sel.HasChanges() {
		t.Error("HasChanges = false with staged entries")
	}
	sel.Clear()
	if sel.HasChanges() {
		t.Error("HasChanges = true after Clear")
	}
}

func TestSelectionSetsAreMutuallyExclusive(t *testing.T) {
	sel := NewSelection("p1", 0, 0)

	// Same id toggled first as available, then as member (status changed
	// after a refresh): the add must be dropped when the remove lands.
	sel.Toggle(Entry{ID: "x", Status: StatusAvailable})
	sel.Toggle(Entry{ID: "x", Status: StatusMember})

	if sel.PendingAdd("x") {
		t.Error("stale add survived a remove toggle")
	}
	if !sel.PendingRemove("x") {
		t.Error("remove toggle was not staged")
	}
}

func TestSelectionSyncWith(t *testing.T) {
	sel := NewSelection("p1", 2, 1)
	sel.Toggle(Entry{ID: "a", Status: StatusAvailable})

	if sel.SyncWith("p1", 2, 1) {
		t.Error("SyncWith reset on an unchanged snapshot")
	}
	if !sel.PendingAdd("a") {
		t.Error("selection lost without a snapshot change")
	}

	if !sel.SyncWith("p1", 3, 1) {
		t.Error("SyncWith did not reset on a member count change")
	}
	if sel.HasChanges() {
		t.Error("staged choices survived a snapshot drift")
	}
}

func TestBuildPlan(t *testing.T) {
	entries := []Entry{
		{ID: "a", Email: "A@Example.com", Status: StatusAvailable},
		{ID: "m", Email: "m@example.com", Status: StatusMember},
		{ID: "skip", Email: "skip@example.com", Status: StatusAvailable},
	}

	sel := NewSelection("p1", 1, 0)
	sel.Toggle(entries[0])
	sel.Toggle(entries[1])

	plan, err := BuildPlan(entries, sel)
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}
	if !slices.Equal(plan.InviteEmails, []string{"a@example.com"}) {
		t.Errorf("InviteEmails = %v", plan.InviteEmails)
	}
	if !slices.Equal(plan.RevokeEmails, []string{"m@example.com"}) {
		t.Errorf("RevokeEmails = %v", plan.RevokeEmails)
	}
	if plan.IsEmpty() {
		t.Error("IsEmpty = true for a populated plan")
	}
}

func TestBuildPlanRejectsMissingEmail(t *testing.T) {
	entries := []Entry{{ID: "a", Status: StatusAvailable}}
	sel := NewSelection("p1", 0, 0)
	sel.Toggle(entries[0])

	if _, err := BuildPlan(entries, sel); !errors.Is(err, ErrMissingEmail) {
		t.Errorf("BuildPlan error = %v, want ErrMissingEmail", err)
	}
}

func TestBuildPlanRejectsEmptySelection(t *testing.T) {
	if _, err := BuildPlan(nil, NewSelection("p1", 0, 0)); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("BuildPlan error = %v, want ErrNothingSelected", err)
	}
}

func TestFormatResults(t *testing.T) {
	tests := []struct {
		name     string
		results  map[string]any
		fallback string
		want     string
	}{
		{
			name:     "empty mapping uses fallback",
			results:  nil,
			fallback: "Members updated",
			want:     "Members updated",
		},
		{
			name:     "counts",
			results:  map[string]any{"invited": float64(2), "alreadyMembers": float64(1)},
			want:     "2 invited, 1 already members",
		},
		{
			name:    "alias keys",
			results: map[string]any{"newInvites": float64(1), "removedMembers": float64(2)},
			want:    "1 invited, 2 removed",
		},
		{
			name:    "bool and list values",
			results: map[string]any{"added": true, "cancelled": []any{"a@x", "b@x"}},
			want:    "1 added, 2 invites cancelled",
		},
		{
			name:    "count wrapper object",
			results: map[string]any{"removed": map[string]any{"count": float64(3)}},
			want:    "3 removed",
		},
		{
			name:     "all zero falls back",
			results:  map[string]any{"invited": float64(0), "added": false},
			fallback: "Nothing changed",
			want:     "Nothing changed",
		},
		{
			name:     "unknown keys only fall back",
			results:  map[string]any{"mystery": float64(4)},
			fallback: "Members updated",
			want:     "Members updated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResults(tt.results, tt.fallback); got != tt.want {
				t.Errorf("FormatResults = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	pairs := map[Status]string{
		StatusOwner:     "owner",
		StatusMember:    "member",
		StatusInvited:   "invited",
		StatusAvailable: "available",
	}
	for status, want := range pairs {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
