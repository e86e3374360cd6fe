package board

import (
	"strings"

	"github.com/avelezt/lanes/internal/models"
)

// The reorder engine is a set of pure functions: given a gesture's source
// location and raw drop index, each computes the full replacement value the
// gateway persists. Nothing here touches the network or the board state.

// MoveCardWithin reorders one column's cards: the card at srcIdx is removed
// and re-inserted at rawIdx, adjusted down by one when the target sits past
// the source (removal shifts the later indices) and clamped to the valid
// range. The second return is false for an in-place drop, which callers
// treat as a no-op and skip persisting.
func MoveCardWithin(cards []models.Card, srcIdx, rawIdx int) ([]models.Card, bool) {
	if srcIdx < 0 || srcIdx >= len(cards) {
		return nil, false
	}

	card := cards[srcIdx]
	reordered := make([]models.Card, 0, len(cards))
	reordered = append(reordered, cards[:srcIdx]...)
	reordered = append(reordered, cards[srcIdx+1:]...)

	target := rawIdx
	if target > srcIdx {
		target--
	}
	target = clamp(target, 0, len(reordered))

	if target == srcIdx {
		return nil, false
	}

	reordered = append(reordered, models.Card{})
	copy(reordered[target+1:], reordered[target:])
	reordered[target] = card
	return reordered, true
}

// MoveCardAcross removes the card at srcIdx from the source column's cards
// and inserts it into the destination's at rawIdx (clamped to [0, len]),
// rewriting its status to the destination column's name. It returns the
// replacement card lists for both columns; ok is false when srcIdx is out
// of range.
func MoveCardAcross(src, dst []models.Card, srcIdx, rawIdx int, dstName string) (srcNext, dstNext []models.Card, ok bool) {
	if srcIdx < 0 || srcIdx >= len(src) {
		return nil, nil, false
	}

	card := src[srcIdx]
	card.Status = dstName

	srcNext = make([]models.Card, 0, len(src)-1)
	srcNext = append(srcNext, src[:srcIdx]...)
	srcNext = append(srcNext, src[srcIdx+1:]...)

	at := clamp(rawIdx, 0, len(dst))
	dstNext = make([]models.Card, 0, len(dst)+1)
	dstNext = append(dstNext, dst[:at]...)
	dstNext = append(dstNext, card)
	dstNext = append(dstNext, dst[at:]...)

	return srcNext, dstNext, true
}

// ColumnTargetOrder computes the 1-based order a column should be persisted
// with when its header is dropped at insertIdx among count columns. The
// insertion index counts slots before removal, so it is adjusted down by
// one when it lands past the source slot, then clamped to [0, count-1].
// ok is false when the move is a no-op (same effective position) and no
// network call should be made.
func ColumnTargetOrder(count, srcIdx, insertIdx int) (order int, ok bool) {
	if srcIdx < 0 || srcIdx >= count {
		return 0, false
	}

	target := clamp(insertIdx, 0, count)
	if target > srcIdx {
		target--
	}
	target = clamp(target, 0, count-1)

	if target == srcIdx {
		return 0, false
	}
	return target + 1, true
}

// ValidateColumnName checks a new or renamed column name: it must be
// non-empty after trimming and must not collide case-insensitively with
// another column. exceptSelf names the column being renamed so a rename to
// a case variant of itself passes. The trimmed name is returned.
func ValidateColumnName(name string, existing []models.Column, exceptSelf string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyColumnName
	}
	lowered := strings.ToLower(trimmed)
	for i := range existing {
		if existing[i].Name == exceptSelf {
			continue
		}
		if strings.ToLower(existing[i].Name) == lowered {
			return "", ErrDuplicateColumnName
		}
	}
	return trimmed, nil
}

// ValidateOrder checks a user-supplied column order value.
func ValidateOrder(order int) error {
	if order < 1 {
		return ErrInvalidOrder
	}
	return nil
}

// OrdersAreDense reports whether the columns' order values form a
// permutation of 1..N. The server normalizes orders on every mutation;
// this is the invariant the client relies on.
func OrdersAreDense(columns []models.Column) bool {
	seen := make(map[int]bool, len(columns))
	for i := range columns {
		order := columns[i].Order
		if order < 1 || order > len(columns) || seen[order] {
			return false
		}
		seen[order] = true
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
