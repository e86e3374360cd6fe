package state

import (
	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/models"
)

// AppState manages the application data state.
// This includes the space list, the board for the current space,
// the user directory, and the assignee filter.
type AppState struct {
	// projects is the list of spaces the logged-in user belongs to
	projects []models.Project

	// selectedProject is the index of the currently open space
	selectedProject int

	// board holds the column layout of the current space
	board *board.State

	// users is the server's user directory, used for the invite roster
	users []models.User

	// currentUser is the logged-in user
	currentUser *models.User

	// assigneeFilter narrows the board to one assignee key.
	// Empty string means no filter.
	assigneeFilter string
}

// NewAppState creates a new AppState.
func NewAppState(projects []models.Project, selectedProject int, b *board.State) *AppState {
	return &AppState{
		projects:        projects,
		selectedProject: selectedProject,
		board:           b,
	}
}

// Projects returns the list of spaces.
func (s *AppState) Projects() []models.Project {
	return s.projects
}

// SetProjects replaces the space list.
func (s *AppState) SetProjects(projects []models.Project) {
	s.projects = projects
	if s.selectedProject >= len(projects) {
		s.selectedProject = max(0, len(projects)-1)
	}
}

// SelectedProject returns the index of the currently open space.
func (s *AppState) SelectedProject() int {
	return s.selectedProject
}

// SetSelectedProject updates the selected space index.
func (s *AppState) SetSelectedProject(index int) {
	s.selectedProject = index
}

// CurrentProject returns the currently open space, or nil if there are none.
func (s *AppState) CurrentProject() *models.Project {
	if len(s.projects) == 0 || s.selectedProject >= len(s.projects) {
		return nil
	}
	return &s.projects[s.selectedProject]
}

// ReplaceProject swaps in an updated copy of a space by ID.
func (s *AppState) ReplaceProject(project models.Project) {
	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = project
			return
		}
	}
}

// Board returns the board state for the current space.
func (s *AppState) Board() *board.State {
	return s.board
}

// SetBoard replaces the board state, typically when switching spaces.
func (s *AppState) SetBoard(b *board.State) {
	s.board = b
}

// Users returns the server's user directory.
func (s *AppState) Users() []models.User {
	return s.users
}

// SetUsers replaces the user directory.
func (s *AppState) SetUsers(users []models.User) {
	s.users = users
}

// CurrentUser returns the logged-in user, or nil before login completes.
func (s *AppState) CurrentUser() *models.User {
	return s.currentUser
}

// SetCurrentUser updates the logged-in user.
func (s *AppState) SetCurrentUser(u *models.User) {
	s.currentUser = u
}

// AssigneeFilter returns the active assignee filter key, or "".
func (s *AppState) AssigneeFilter() string {
	return s.assigneeFilter
}

// SetAssigneeFilter updates the assignee filter key.
func (s *AppState) SetAssigneeFilter(key string) {
	s.assigneeFilter = key
}

// ClearAssigneeFilter removes the assignee filter.
func (s *AppState) ClearAssigneeFilter() {
	s.assigneeFilter = ""
}

// VisibleCards returns the cards of a column with the assignee filter applied.
// With no filter active it returns the column's cards unchanged.
func (s *AppState) VisibleCards(col *models.Column) []models.Card {
	if s.assigneeFilter == "" {
		return col.Cards
	}
	filtered := make([]models.Card, 0, len(col.Cards))
	for _, card := range col.Cards {
		if card.AssigneeKey() == s.assigneeFilter {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// TotalCardCount returns the number of cards across all columns, unfiltered.
func (s *AppState) TotalCardCount() int {
	if s.board == nil {
		return 0
	}
	total := 0
	for _, col := range s.board.Columns() {
		total += len(col.Cards)
	}
	return total
}
