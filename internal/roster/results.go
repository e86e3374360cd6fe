package roster

import (
	"fmt"
	"strings"
)

// resultAliases maps a summary label to the keys the server has emitted
// for that outcome category, in the order they are consulted.
var resultParts = []struct {
	label   string
	aliases []string
}{
	{"added", []string{"added"}},
	{"invited", []string{"invited", "newInvites"}},
	{"already members", []string{"alreadyMembers"}},
	{"already invited", []string{"alreadyInvited"}},
	{"invalid", []string{"invalid"}},
	{"removed", []string{"removed", "removedMembers", "removedMember", "membersRemoved"}},
	{"invites cancelled", []string{"cancelled", "cancelledInvites", "revoked", "revokedInvites", "invitesCancelled"}},
}

// FormatResults renders the server's invite/revoke outcome mapping as a
// comma-joined human summary ("2 added, 1 already invited"). The mapping's
// values arrive in whatever shape the server felt like: a count, a bool, a
// list, or a {count: ...} wrapper. Falls back to the given message when the
// mapping is absent or contributes nothing.
func FormatResults(results map[string]any, fallback string) string {
	if len(results) == 0 {
		return fallback
	}

	parts := make([]string, 0, len(resultParts))
	for _, part := range resultParts {
		count := 0
		for _, key := range part.aliases {
			if value, ok := results[key]; ok {
				count = normalizeCount(value)
				if count > 0 {
					break
				}
			}
		}
		if count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, part.label))
		}
	}

	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// normalizeCount coerces one outcome value to a count.
func normalizeCount(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []any:
		return len(v)
	case map[string]any:
		if inner, ok := v["count"]; ok {
			return normalizeCount(inner)
		}
		return 0
	default:
		return 0
	}
}
