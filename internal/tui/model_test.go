package tui

import (
	"context"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/config"
	"github.com/avelezt/lanes/internal/models"
	"github.com/avelezt/lanes/internal/tui/state"
)

// stubGateway satisfies the gateway with canned responses. Tests exercising
// the update loop only need commands to be constructible, not executed.
type stubGateway struct {
	columns  []models.Column
	projects []models.Project
}

func (g *stubGateway) FetchProjects(ctx context.Context) ([]models.Project, error) {
	return g.projects, nil
}

func (g *stubGateway) FetchProject(ctx context.Context, projectID string) (*models.Project, error) {
	for i := range g.projects {
		if g.projects[i].ID == projectID {
			return &g.projects[i], nil
		}
	}
	return nil, api.ErrEmptyResponse
}

func (g *stubGateway) CreateProject(ctx context.Context, req api.CreateProjectRequest) (*models.Project, string, error) {
	return &models.Project{ID: "new", Name: req.Name}, "", nil
}

func (g *stubGateway) FetchColumns(ctx context.Context, projectID string) ([]models.Column, error) {
	return g.columns, nil
}

func (g *stubGateway) ReplaceColumnCards(ctx context.Context, projectID, columnName string, cards []models.Card) ([]models.Column, string, error) {
	return g.columns, "", nil
}

func (g *stubGateway) SetColumnOrder(ctx context.Context, projectID, columnName string, order int) ([]models.Column, string, error) {
	return g.columns, "", nil
}

func (g *stubGateway) RenameColumn(ctx context.Context, projectID, columnName, newName string) ([]models.Column, string, error) {
	return g.columns, "", nil
}

func (g *stubGateway) CreateColumn(ctx context.Context, projectID string, req api.CreateColumnRequest) ([]models.Column, string, error) {
	return g.columns, "", nil
}

func (g *stubGateway) DeleteColumn(ctx context.Context, projectID, columnName, targetColumn string) ([]models.Column, string, error) {
	return g.columns, "", nil
}

func (g *stubGateway) FetchUsers(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (g *stubGateway) InviteMembers(ctx context.Context, projectID string, emails []string) (*api.MemberResult, error) {
	return &api.MemberResult{}, nil
}

func (g *stubGateway) RevokeInvites(ctx context.Context, projectID string, emails []string) (*api.MemberResult, error) {
	return &api.MemberResult{}, nil
}

func (g *stubGateway) SendSignupOTP(ctx context.Context, email string) (string, error) {
	return "", nil
}

func (g *stubGateway) VerifySignupOTP(ctx context.Context, email, otp string) (*api.Credentials, error) {
	return nil, api.ErrEmptyResponse
}

func (g *stubGateway) CheckUser(ctx context.Context, email string) (bool, error) {
	return true, nil
}

func (g *stubGateway) SendLoginOTP(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

func (g *stubGateway) VerifyLoginOTP(ctx context.Context, email, otp string) (*api.Credentials, error) {
	return nil, api.ErrEmptyResponse
}

func (g *stubGateway) UpdateProfile(ctx context.Context, req api.ProfileRequest) (*models.User, error) {
	return nil, api.ErrEmptyResponse
}

func (g *stubGateway) Logout(ctx context.Context) error {
	return nil
}

var _ api.Gateway = (*stubGateway)(nil)

// setupTestModel builds a logged-in model showing one space with the given
// columns, sized to a reasonable terminal.
func setupTestModel(columns []models.Column) Model {
	project := models.Project{ID: "p1", Name: "Test Space"}

	b := board.NewState(project.ID)
	b.ReplaceColumns(columns)

	appState := state.NewAppState([]models.Project{project}, 0, b)
	uiState := state.NewUIState()
	uiState.SetWidth(130)
	uiState.SetHeight(40)
	uiState.SetMode(state.NormalMode)

	cfg := &config.Config{RequestTimeout: 5, KeyMappings: config.DefaultKeyMappings()}

	return Model{
		Ctx:               context.Background(),
		Gateway:           &stubGateway{columns: columns, projects: []models.Project{project}},
		Config:            cfg,
		AppState:          appState,
		UiState:           uiState,
		FormState:         state.NewFormState(),
		RosterState:       state.NewRosterState(),
		NotificationState: state.NewNotificationState(),
	}
}

func testColumns() []models.Column {
	return []models.Column{
		{Name: "Todo", Order: 1, Cards: []models.Card{
			{Title: "first", Status: "Todo"},
			{Title: "second", Status: "Todo"},
		}},
		{Name: "Doing", Order: 2, Cards: []models.Card{
			{Title: "busy", Status: "Doing"},
		}},
		{Name: "Done", Order: 3, Cards: []models.Card{}},
	}
}
