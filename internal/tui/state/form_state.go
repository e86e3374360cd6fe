package state

import "charm.land/huh/v2"

// LoginStage tracks progress through the email and OTP login flow.
type LoginStage int

const (
	StageEmail  LoginStage = iota // Entering the account email
	StageOTP                      // Entering the one-time code
	StageSignup                   // New account, entering profile details
	StageBusy                     // Waiting on the server
)

// FormState manages all active huh forms and their value holders.
// Only one form is active at a time, matching the current Mode.
type FormState struct {
	// Login flow
	LoginForm  *huh.Form
	LoginStage LoginStage
	Email      string
	OTP        string
	FirstName  string
	LastName   string
	IsSignup   bool

	// Column create/rename
	ColumnForm *huh.Form
	ColumnName string
	// RenamingColumn is the key of the column being renamed, empty for create
	RenamingColumn string

	// Card create/edit
	CardForm        *huh.Form
	CardTitle       string
	CardDescription string
	CardDueDate     string
	CardAssignee    string
	// EditingCard is the index of the card being edited, -1 for create
	EditingCard int

	// Space creation
	ProjectForm        *huh.Form
	ProjectName        string
	ProjectDescription string

	// Destination picker shown when deleting a column that still has cards
	TargetForm   *huh.Form
	TargetColumn string
	// DeletingColumn is the key of the column pending deletion
	DeletingColumn string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{EditingCard: -1}
}

// ClearColumnForm resets the column form and its values.
func (s *FormState) ClearColumnForm() {
	s.ColumnForm = nil
	s.ColumnName = ""
	s.RenamingColumn = ""
}

// ClearCardForm resets the card form and its values.
func (s *FormState) ClearCardForm() {
	s.CardForm = nil
	s.CardTitle = ""
	s.CardDescription = ""
	s.CardDueDate = ""
	s.CardAssignee = ""
	s.EditingCard = -1
}

// ClearProjectForm resets the space creation form and its values.
func (s *FormState) ClearProjectForm() {
	s.ProjectForm = nil
	s.ProjectName = ""
	s.ProjectDescription = ""
}

// ClearTargetForm resets the destination picker and its values.
func (s *FormState) ClearTargetForm() {
	s.TargetForm = nil
	s.TargetColumn = ""
	s.DeletingColumn = ""
}
