package models

import (
	"encoding/json"
	"strings"
)

// RefKind tags the shape a user reference arrived in.
type RefKind int

const (
	// RefNone is the zero reference.
	RefNone RefKind = iota
	// RefRawID is a bare string: an id, or sometimes a plain email.
	RefRawID
	// RefUser is an object carrying identity fields directly.
	RefUser
)

// Ref is a reference to a user as the Spaces API emits it. The API is not
// consistent: an owner, member, or invite may arrive as a bare id string,
// as a user object, or as a wrapper object whose user/member/invitedUser
// field holds one of the former (with record-level fields such as role or
// the invite email alongside). Ref keeps whichever shapes were present and
// resolves identity and email through one recursive extractor each.
type Ref struct {
	Kind  RefKind
	Raw   string // RefRawID payload
	User  *User  // object fields, when present
	Inner *Ref   // wrapped reference, when present
}

// wrapper keys checked in priority order.
var refWrapperKeys = []string{"user", "member", "invitedUser"}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*r = Ref{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*r = Ref{Kind: RefRawID, Raw: raw}
		return nil
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}
	out := Ref{Kind: RefUser, User: &user}

	// An object can carry both its own fields and a wrapped reference
	// (e.g. a member record {role: "...", user: {...}}).
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range refWrapperKeys {
		payload, ok := fields[key]
		if !ok || strings.TrimSpace(string(payload)) == "null" {
			continue
		}
		var inner Ref
		if err := json.Unmarshal(payload, &inner); err != nil {
			return err
		}
		if !inner.IsZero() {
			out.Inner = &inner
			break
		}
	}

	*r = out
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RefRawID:
		return json.Marshal(r.Raw)
	case RefUser:
		return json.Marshal(r.User)
	default:
		return []byte("null"), nil
	}
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.Kind == RefNone
}

// ID resolves the stable identity key: a bare string is returned as-is;
// an object yields _id > id > userId; otherwise the wrapped reference is
// consulted. Empty when nothing resolves.
func (r Ref) ID() string {
	switch r.Kind {
	case RefRawID:
		return r.Raw
	case RefUser:
		for _, id := range []string{r.User.ID, r.User.AltID, r.User.UserID} {
			if id != "" {
				return id
			}
		}
		if r.Inner != nil {
			return r.Inner.ID()
		}
	}
	return ""
}

// Email resolves a normalized email for the reference. A bare string
// counts only if it contains "@"; object fields are tried in priority
// order with the same requirement; then the wrapped reference.
func (r Ref) Email() string {
	switch r.Kind {
	case RefRawID:
		if strings.Contains(r.Raw, "@") {
			return NormalizeEmail(r.Raw)
		}
	case RefUser:
		if email := r.User.BestEmail(); email != "" {
			return NormalizeEmail(email)
		}
		if r.Inner != nil {
			return r.Inner.Email()
		}
	}
	return ""
}

// Role returns the record's role, checking the record itself before the
// wrapped reference. Membership records carry role at either level.
func (r Ref) Role() string {
	if r.Kind == RefUser {
		if r.User.Role != "" {
			return r.User.Role
		}
		if r.Inner != nil {
			return r.Inner.Role()
		}
	}
	return ""
}

// Target returns the innermost user-shaped reference: the wrapped user for
// a membership or invite record, the reference itself otherwise.
func (r Ref) Target() Ref {
	if r.Kind == RefUser && r.Inner != nil {
		return *r.Inner
	}
	return r
}

// DisplayName resolves a human label for the reference.
func (r Ref) DisplayName() string {
	switch r.Kind {
	case RefRawID:
		return r.Raw
	case RefUser:
		if name := r.User.DisplayName(); name != "" {
			return name
		}
		if r.Inner != nil {
			return r.Inner.DisplayName()
		}
	}
	return ""
}

// UserRef builds a reference from a user object. Used for the acting user
// held in the session.
func UserRef(u User) Ref {
	return Ref{Kind: RefUser, User: &u}
}

// RawRef builds a reference from a bare id string.
func RawRef(id string) Ref {
	return Ref{Kind: RefRawID, Raw: id}
}
