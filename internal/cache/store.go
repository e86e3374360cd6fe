package cache

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/avelezt/lanes/internal/models"
)

// Store reads and writes snapshots of server state. Snapshots are advisory:
// a missing or unreadable snapshot is never an error the UI should surface.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store wrapping the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveBoard stores the column layout for a project, replacing any prior snapshot.
func (s *Store) SaveBoard(ctx context.Context, projectID string, columns []models.Column) error {
	payload, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO board_snapshots (project_id, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(project_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, projectID, string(payload))
	return err
}

// LoadBoard returns the last saved column layout for a project.
// Returns (nil, false) when no snapshot exists or it cannot be decoded.
func (s *Store) LoadBoard(ctx context.Context, projectID string) ([]models.Column, bool) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM board_snapshots WHERE project_id = ?",
		projectID,
	).Scan(&payload)
	if err != nil {
		return nil, false
	}

	var columns []models.Column
	if err := json.Unmarshal([]byte(payload), &columns); err != nil {
		return nil, false
	}
	return columns, true
}

// DeleteBoard removes the snapshot for a project, if any.
func (s *Store) DeleteBoard(ctx context.Context, projectID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM board_snapshots WHERE project_id = ?", projectID)
	return err
}

// SaveProjects stores the project list for the logged-in user.
func (s *Store) SaveProjects(ctx context.Context, projects []models.Project) error {
	payload, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO project_snapshots (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(payload))
	return err
}

// LoadProjects returns the last saved project list.
func (s *Store) LoadProjects(ctx context.Context) ([]models.Project, bool) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM project_snapshots WHERE id = 1",
	).Scan(&payload)
	if err != nil {
		return nil, false
	}

	var projects []models.Project
	if err := json.Unmarshal([]byte(payload), &projects); err != nil {
		return nil, false
	}
	return projects, true
}

// Clear removes all snapshots. Called on logout so the next login
// starts from the server's state.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM board_snapshots"); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM project_snapshots")
	return err
}
