package board

import (
	"github.com/avelezt/lanes/internal/models"
)

// State holds the authoritative column list for one open project. It is the
// only board data the rendering layer reads. Order-affecting mutations never
// advance it optimistically: callers persist first, then adopt the server's
// returned column set through Accept, or restore a Snapshot on failure.
//
// State is mutated only by the UI goroutine reacting to completed requests,
// so it carries no lock. What it does carry is a request counter: rapid
// repeated gestures can put overlapping requests in flight, and without the
// counter the last response to arrive would win by accident of network
// timing. Every adopted response replaces the whole board, so the counter
// is board-wide: a gesture on one column still supersedes an in-flight
// response for another. Begin stamps a request; Accept discards responses
// whose stamp has been overtaken.
type State struct {
	projectID string
	columns   []models.Column
	requests  uint64
}

// NewState creates an empty State for a project.
func NewState(projectID string) *State {
	return &State{projectID: projectID}
}

// ProjectID returns the project this state belongs to.
func (s *State) ProjectID() string {
	return s.projectID
}

// Columns returns the current column list. Callers must treat it as
// read-only; mutations go through ReplaceColumns.
func (s *State) Columns() []models.Column {
	return s.columns
}

// ReplaceColumns atomically swaps the entire column list. Used after every
// successful mutation so the client never locally guesses server-assigned
// ordering or ids.
func (s *State) ReplaceColumns(columns []models.Column) {
	s.columns = columns
}

// FindColumn looks a column up by key: persisted id when present, else
// name. The server may omit ids entirely, so both are tried against the
// given key. Returns the index and column, or -1 and nil.
func (s *State) FindColumn(key string) (int, *models.Column) {
	for i := range s.columns {
		if s.columns[i].ID != "" && s.columns[i].ID == key {
			return i, &s.columns[i]
		}
	}
	for i := range s.columns {
		if s.columns[i].Name == key {
			return i, &s.columns[i]
		}
	}
	return -1, nil
}

// Snapshot returns a deep copy of the current column list, suitable for
// restoring through ReplaceColumns when a persistence call fails.
func (s *State) Snapshot() []models.Column {
	if s.columns == nil {
		return nil
	}
	out := make([]models.Column, len(s.columns))
	for i := range s.columns {
		out[i] = s.columns[i]
		if s.columns[i].Cards != nil {
			out[i].Cards = append([]models.Card(nil), s.columns[i].Cards...)
		}
	}
	return out
}

// Begin stamps a new in-flight order-affecting request and returns its
// version. Each gesture takes a fresh stamp before its request goes out.
func (s *State) Begin() uint64 {
	s.requests++
	return s.requests
}

// Accept reports whether a completed request's response should be adopted:
// true only when no request was stamped after it, regardless of which
// column the requests touched. Stale responses are discarded rather than
// trusted by arrival order.
func (s *State) Accept(version uint64) bool {
	return version != 0 && s.requests == version
}
