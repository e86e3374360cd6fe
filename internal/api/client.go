package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/avelezt/lanes/internal/board"
	"github.com/avelezt/lanes/internal/models"
)

// Client implements Gateway over HTTP. One circuit breaker guards the
// whole Spaces host: the client is single-user and every endpoint shares
// the same backend, so a dead server trips once for all of them.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a Client for the given server base URL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "spaces-api",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		breaker: breaker,
	}
}

var _ Gateway = (*Client)(nil)

// envelope is the common response wrapper the server uses.
type envelope struct {
	Projects []models.Project `json:"projects,omitempty"`
	Project  *models.Project  `json:"project,omitempty"`
	Columns  []models.Column  `json:"columns,omitempty"`
	Users    []models.User    `json:"users,omitempty"`
	User     *models.User     `json:"user,omitempty"`
	Token    string           `json:"token,omitempty"`
	Exists   bool             `json:"exists,omitempty"`
	Results  map[string]any   `json:"results,omitempty"`
	Message  string           `json:"message,omitempty"`
}

func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	var out envelope
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) FetchProject(ctx context.Context, projectID string) (*models.Project, error) {
	var out envelope
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, &out); err != nil {
		return nil, err
	}
	if out.Project == nil {
		return nil, ErrEmptyResponse
	}
	return out.Project, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, "", ErrEmptyProjectName
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/projects", req, &out); err != nil {
		return nil, "", err
	}
	return out.Project, out.Message, nil
}

func (c *Client) FetchColumns(ctx context.Context, projectID string) ([]models.Column, error) {
	var out envelope
	if err := c.do(ctx, http.MethodGet, c.columnsPath(projectID, ""), nil, &out); err != nil {
		return nil, err
	}
	return out.Columns, nil
}

func (c *Client) ReplaceColumnCards(ctx context.Context, projectID, columnName string, cards []models.Card) ([]models.Column, string, error) {
	if cards == nil {
		cards = []models.Card{}
	}
	body := map[string]any{"cards": cards}
	return c.updateColumn(ctx, projectID, columnName, body)
}

func (c *Client) SetColumnOrder(ctx context.Context, projectID, columnName string, order int) ([]models.Column, string, error) {
	if err := board.ValidateOrder(order); err != nil {
		return nil, "", err
	}
	return c.updateColumn(ctx, projectID, columnName, map[string]any{"order": order})
}

func (c *Client) RenameColumn(ctx context.Context, projectID, columnName, newName string) ([]models.Column, string, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return nil, "", board.ErrEmptyColumnName
	}
	return c.updateColumn(ctx, projectID, columnName, map[string]any{"name": trimmed})
}

func (c *Client) CreateColumn(ctx context.Context, projectID string, req CreateColumnRequest) ([]models.Column, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, "", board.ErrEmptyColumnName
	}
	if req.Order != 0 {
		if err := board.ValidateOrder(req.Order); err != nil {
			return nil, "", err
		}
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, c.columnsPath(projectID, ""), req, &out); err != nil {
		return nil, "", err
	}
	return out.Columns, out.Message, nil
}

func (c *Client) DeleteColumn(ctx context.Context, projectID, columnName, targetColumn string) ([]models.Column, string, error) {
	body := map[string]any{}
	if targetColumn != "" {
		body["targetColumn"] = targetColumn
	}
	var out envelope
	if err := c.do(ctx, http.MethodDelete, c.columnsPath(projectID, columnName), body, &out); err != nil {
		return nil, "", err
	}
	return out.Columns, out.Message, nil
}

func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	var out envelope
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) InviteMembers(ctx context.Context, projectID string, emails []string) (*MemberResult, error) {
	return c.memberCall(ctx, projectID, "invite", emails)
}

func (c *Client) RevokeInvites(ctx context.Context, projectID string, emails []string) (*MemberResult, error) {
	return c.memberCall(ctx, projectID, "revoke", emails)
}

// memberCall posts an invite or revoke payload: {email} for a single
// address, {emails} for several.
func (c *Client) memberCall(ctx context.Context, projectID, action string, emails []string) (*MemberResult, error) {
	if len(emails) == 0 {
		return nil, ErrNoEmails
	}
	var body any
	if len(emails) == 1 {
		body = map[string]string{"email": emails[0]}
	} else {
		body = map[string][]string{"emails": emails}
	}
	path := "/projects/" + url.PathEscape(projectID) + "/" + action
	var out envelope
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &MemberResult{Results: out.Results, Message: out.Message}, nil
}

func (c *Client) updateColumn(ctx context.Context, projectID, columnName string, body map[string]any) ([]models.Column, string, error) {
	var out envelope
	if err := c.do(ctx, http.MethodPut, c.columnsPath(projectID, columnName), body, &out); err != nil {
		return nil, "", err
	}
	return out.Columns, out.Message, nil
}

func (c *Client) columnsPath(projectID, columnName string) string {
	path := "/projects/" + url.PathEscape(projectID) + "/columns"
	if columnName != "" {
		path += "/" + url.PathEscape(columnName)
	}
	return path
}

// do performs one JSON round trip through the circuit breaker. A non-2xx
// response becomes an *Error carrying the server's message when it sent
// one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	_, err = c.breaker.Execute(func() (any, error) {
		res, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, newError(res.StatusCode, data)
		}

		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil, nil
	})
	return err
}
