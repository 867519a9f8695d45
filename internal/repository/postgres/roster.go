package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listActorsQuery = `
SELECT id, display_name, role, COALESCE(team_id, ''), last_active_at
FROM actors
ORDER BY display_name`
	getProjectQuery   = `SELECT id, name, COALESCE(location, '') FROM projects WHERE id = $1`
	listProjectsQuery = `SELECT id, name, COALESCE(location, '') FROM projects ORDER BY name`
)

// ListActors returns the full actor roster.
func (p *Postgres) ListActors(ctx context.Context) ([]entities.Actor, error) {
	rows, err := p.db.Query(ctx, listActorsQuery)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()

	actors := make([]entities.Actor, 0)
	for rows.Next() {
		var a entities.Actor
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.Role, &a.TeamID, &a.LastActiveAt); err != nil {
			p.log.Errorw("failed to scan actor", "error", err)
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actors: %w", err)
	}
	return actors, nil
}

// GetProject returns a single project.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	var pr entities.Project
	if err := p.db.QueryRow(ctx, getProjectQuery, projectID).Scan(&pr.ID, &pr.Name, &pr.Location); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}

// ListProjects returns all projects.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Location); err != nil {
			p.log.Errorw("failed to scan project", "error", err)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
