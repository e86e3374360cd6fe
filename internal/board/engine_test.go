package board

import (
	"errors"
	"testing"

	"github.com/avelezt/lanes/internal/models"
)

func cardsNamed(titles ...string) []models.Card {
	cards := make([]models.Card, len(titles))
	for i, title := range titles {
		cards[i] = models.Card{Title: title, Status: "Todo"}
	}
	return cards
}

func titlesOf(cards []models.Card) []string {
	titles := make([]string, len(cards))
	for i := range cards {
		titles[i] = cards[i].Title
	}
	return titles
}

func sameTitles(a []string, b []models.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i].Title {
			return false
		}
	}
	return true
}

func TestMoveCardWithin(t *testing.T) {
	tests := []struct {
		name   string
		cards  []string
		srcIdx int
		rawIdx int
		want   []string
		wantOK bool
	}{
		{
			name:   "move down one slot",
			cards:  []string{"a", "b", "c"},
			srcIdx: 0,
			rawIdx: 2, // drop below the next card
			want:   []string{"b", "a", "c"},
			wantOK: true,
		},
		{
			name:   "move up one slot",
			cards:  []string{"a", "b", "c"},
			srcIdx: 2,
			rawIdx: 1,
			want:   []string{"a", "c", "b"},
			wantOK: true,
		},
		{
			name:   "two card swap",
			cards:  []string{"a", "b"},
			srcIdx: 0,
			rawIdx: 2,
			want:   []string{"b", "a"},
			wantOK: true,
		},
		{
			name:   "drop in place is a no-op",
			cards:  []string{"a", "b", "c"},
			srcIdx: 1,
			rawIdx: 1,
			wantOK: false,
		},
		{
			name:   "drop just past self is a no-op",
			cards:  []string{"a", "b", "c"},
			srcIdx: 1,
			rawIdx: 2, // removal adjustment lands it back at 1
			wantOK: false,
		},
		{
			name:   "raw index past the end clamps to last",
			cards:  []string{"a", "b", "c"},
			srcIdx: 0,
			rawIdx: 99,
			want:   []string{"b", "c", "a"},
			wantOK: true,
		},
		{
			name:   "negative raw index clamps to first",
			cards:  []string{"a", "b", "c"},
			srcIdx: 2,
			rawIdx: -5,
			want:   []string{"c", "a", "b"},
			wantOK: true,
		},
		{
			name:   "source out of range",
			cards:  []string{"a"},
			srcIdx: 3,
			rawIdx: 0,
			wantOK: false,
		},
		{
			name:   "negative source",
			cards:  []string{"a"},
			srcIdx: -1,
			rawIdx: 0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoveCardWithin(cardsNamed(tt.cards...), tt.srcIdx, tt.rawIdx)
			if ok != tt.wantOK {
				t.Fatalf("MoveCardWithin ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !sameTitles(tt.want, got) {
				t.Errorf("MoveCardWithin = %v, want %v", titlesOf(got), tt.want)
			}
		})
	}
}

func TestMoveCardWithinDoesNotMutateInput(t *testing.T) {
	cards := cardsNamed("a", "b", "c")
	_, ok := MoveCardWithin(cards, 0, 2)
	if !ok {
		t.Fatal("expected a successful move")
	}
	if !sameTitles([]string{"a", "b", "c"}, cards) {
		t.Errorf("input slice was mutated: %v", titlesOf(cards))
	}
}

func TestMoveCardAcross(t *testing.T) {
	src := cardsNamed("a", "b")
	dst := cardsNamed("x")

	srcNext, dstNext, ok := MoveCardAcross(src, dst, 0, len(dst), "Done")
	if !ok {
		t.Fatal("expected a successful move")
	}
	if !sameTitles([]string{"b"}, srcNext) {
		t.Errorf("source after move = %v, want [b]", titlesOf(srcNext))
	}
	if !sameTitles([]string{"x", "a"}, dstNext) {
		t.Errorf("destination after move = %v, want [x a]", titlesOf(dstNext))
	}
	if dstNext[1].Status != "Done" {
		t.Errorf("moved card status = %q, want %q", dstNext[1].Status, "Done")
	}
	// The original card is untouched
	if src[0].Status != "Todo" {
		t.Errorf("source card status was mutated to %q", src[0].Status)
	}
}

func TestMoveCardAcrossIntoEmptyColumn(t *testing.T) {
	src := cardsNamed("only")
	srcNext, dstNext, ok := MoveCardAcross(src, nil, 0, 0, "Doing")
	if !ok {
		t.Fatal("expected a successful move")
	}
	if len(srcNext) != 0 {
		t.Errorf("source after move has %d cards, want 0", len(srcNext))
	}
	if !sameTitles([]string{"only"}, dstNext) {
		t.Errorf("destination after move = %v, want [only]", titlesOf(dstNext))
	}
}

func TestMoveCardAcrossClampsInsertIndex(t *testing.T) {
	src := cardsNamed("a")
	dst := cardsNamed("x", "y")

	_, dstNext, ok := MoveCardAcross(src, dst, 0, 99, "Done")
	if !ok {
		t.Fatal("expected a successful move")
	}
	if !sameTitles([]string{"x", "y", "a"}, dstNext) {
		t.Errorf("destination after clamped insert = %v", titlesOf(dstNext))
	}
}

func TestMoveCardAcrossBadSource(t *testing.T) {
	if _, _, ok := MoveCardAcross(cardsNamed("a"), nil, 5, 0, "Done"); ok {
		t.Error("expected ok=false for out-of-range source index")
	}
}

func TestColumnTargetOrder(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		srcIdx    int
		insertIdx int
		wantOrder int
		wantOK    bool
	}{
		{name: "move first right", count: 3, srcIdx: 0, insertIdx: 2, wantOrder: 2, wantOK: true},
		{name: "move last left", count: 3, srcIdx: 2, insertIdx: 1, wantOrder: 2, wantOK: true},
		{name: "move to front", count: 3, srcIdx: 2, insertIdx: 0, wantOrder: 1, wantOK: true},
		{name: "move to back", count: 3, srcIdx: 0, insertIdx: 3, wantOrder: 3, wantOK: true},
		{name: "drop in place", count: 3, srcIdx: 1, insertIdx: 1, wantOK: false},
		{name: "drop just past self", count: 3, srcIdx: 1, insertIdx: 2, wantOK: false},
		{name: "insert index clamped", count: 2, srcIdx: 0, insertIdx: 50, wantOrder: 2, wantOK: true},
		{name: "source out of range", count: 2, srcIdx: 5, insertIdx: 0, wantOK: false},
		{name: "single column never moves", count: 1, srcIdx: 0, insertIdx: 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := ColumnTargetOrder(tt.count, tt.srcIdx, tt.insertIdx)
			if ok != tt.wantOK {
				t.Fatalf("ColumnTargetOrder ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && order != tt.wantOrder {
				t.Errorf("ColumnTargetOrder = %d, want %d", order, tt.wantOrder)
			}
		})
	}
}

func TestValidateColumnName(t *testing.T) {
	existing := []models.Column{
		{Name: "Todo"},
		{Name: "Doing"},
	}

	tests := []struct {
		name       string
		input      string
		exceptSelf string
		want       string
		wantErr    error
	}{
		{name: "valid new name", input: "Done", want: "Done"},
		{name: "trims whitespace", input: "  Done  ", want: "Done"},
		{name: "empty", input: "", wantErr: ErrEmptyColumnName},
		{name: "whitespace only", input: "   ", wantErr: ErrEmptyColumnName},
		{name: "exact duplicate", input: "Todo", wantErr: ErrDuplicateColumnName},
		{name: "case-insensitive duplicate", input: "tOdO", wantErr: ErrDuplicateColumnName},
		{name: "rename to case variant of itself", input: "TODO", exceptSelf: "Todo", want: "TODO"},
		{name: "rename colliding with another column", input: "Doing", exceptSelf: "Todo", wantErr: ErrDuplicateColumnName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateColumnName(tt.input, existing, tt.exceptSelf)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateColumnName error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateColumnName error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateColumnName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	if err := ValidateOrder(1); err != nil {
		t.Errorf("ValidateOrder(1) = %v", err)
	}
	if err := ValidateOrder(0); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("ValidateOrder(0) = %v, want ErrInvalidOrder", err)
	}
	if err := ValidateOrder(-3); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("ValidateOrder(-3) = %v, want ErrInvalidOrder", err)
	}
}

func TestOrdersAreDense(t *testing.T) {
	tests := []struct {
		name   string
		orders []int
		want   bool
	}{
		{name: "dense", orders: []int{1, 2, 3}, want: true},
		{name: "dense out of sequence", orders: []int{2, 3, 1}, want: true},
		{name: "gap", orders: []int{1, 3, 4}, want: false},
		{name: "duplicate", orders: []int{1, 2, 2}, want: false},
		{name: "zero based", orders: []int{0, 1, 2}, want: false},
		{name: "empty", orders: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns := make([]models.Column, len(tt.orders))
			for i, order := range tt.orders {
				columns[i] = models.Column{Order: order}
			}
			if got := OrdersAreDense(columns); got != tt.want {
				t.Errorf("OrdersAreDense(%v) = %v, want %v", tt.orders, got, tt.want)
			}
		})
	}
}
