package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertBlockerQuery = `
INSERT INTO blockers (id, category, priority, status, location, created_at, assigned_actor_id, project_id, has_documentation)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
ON CONFLICT (id) DO NOTHING
RETURNING id`
	insertHistoryQuery = `
INSERT INTO blocker_status_history (blocker_id, status, changed_at)
VALUES ($1, $2, $3)`
	updateStatusQuery = `
UPDATE blockers
SET status = $2,
    completed_at = CASE WHEN $2 = 'verified_complete' THEN $3 ELSE completed_at END
WHERE id = $1
RETURNING id`
	getBlockerQuery = `
SELECT b.id, b.category, b.priority, b.status, COALESCE(b.location, ''), b.created_at, b.completed_at,
       COALESCE(b.assigned_actor_id, ''), b.project_id, b.has_documentation
FROM blockers b
WHERE b.id = $1`
	blockerHistoryQuery = `
SELECT blocker_id, status, changed_at
FROM blocker_status_history
WHERE blocker_id = ANY($1)
ORDER BY changed_at`
)

// CreateBlocker inserts a blocker and seeds its status history with
// the initial state. Empty ids get a generated uuid; empty statuses
// default to pending.
func (p *Postgres) CreateBlocker(ctx context.Context, b entities.Blocker) (*entities.Blocker, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = entities.StatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create blocker: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, insertBlockerQuery,
		b.ID, b.Category, b.Priority, b.Status, b.Location,
		b.CreatedAt, b.AssignedActorID, b.ProjectID, b.HasDocumentation,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBlockerExists
		}
		p.log.Errorw("failed to create blocker", "error", err, "blocker_id", b.ID)
		return nil, fmt.Errorf("create blocker: %w", err)
	}

	if _, err := tx.Exec(ctx, insertHistoryQuery, b.ID, b.Status, b.CreatedAt); err != nil {
		return nil, fmt.Errorf("seed blocker history: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create blocker: %w", err)
	}

	b.StatusHistory = []entities.StatusChange{{Status: b.Status, At: b.CreatedAt}}
	p.log.Infow("blocker created", "blocker_id", b.ID, "project_id", b.ProjectID)
	return &b, nil
}

// UpdateBlockerStatus transitions a blocker and appends the change to
// its history. Reaching verified_complete stamps the completion time.
func (p *Postgres) UpdateBlockerStatus(ctx context.Context, blockerID string, status entities.BlockerStatus, at time.Time) (*entities.Blocker, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin status update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	if err := tx.QueryRow(ctx, updateStatusQuery, blockerID, status, at).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBlockerNotFound
		}
		p.log.Errorw("failed to update blocker status", "error", err, "blocker_id", blockerID)
		return nil, fmt.Errorf("update blocker status: %w", err)
	}
	if _, err := tx.Exec(ctx, insertHistoryQuery, blockerID, status, at); err != nil {
		return nil, fmt.Errorf("append blocker history: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit status update: %w", err)
	}

	p.log.Infow("blocker status updated", "blocker_id", blockerID, "status", status)
	return p.GetBlocker(ctx, blockerID)
}

// GetBlocker returns a single blocker with its status history.
func (p *Postgres) GetBlocker(ctx context.Context, blockerID string) (*entities.Blocker, error) {
	var b entities.Blocker
	err := p.db.QueryRow(ctx, getBlockerQuery, blockerID).Scan(
		&b.ID, &b.Category, &b.Priority, &b.Status, &b.Location,
		&b.CreatedAt, &b.CompletedAt, &b.AssignedActorID, &b.ProjectID, &b.HasDocumentation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBlockerNotFound
		}
		return nil, fmt.Errorf("get blocker: %w", err)
	}

	histories, err := p.loadHistories(ctx, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.StatusHistory = histories[b.ID]
	return &b, nil
}

// ListBlockers returns the blocker snapshot matching the filter, each
// record carrying its full status history.
func (p *Postgres) ListBlockers(ctx context.Context, filter entities.BlockerFilter) ([]entities.Blocker, error) {
	whereClause, args := buildBlockerFilter(filter)

	var q strings.Builder
	q.WriteString(`SELECT b.id, b.category, b.priority, b.status, COALESCE(b.location, ''), b.created_at, b.completed_at,
       COALESCE(b.assigned_actor_id, ''), b.project_id, b.has_documentation
FROM blockers b`)
	if whereClause != "" {
		q.WriteByte(' ')
		q.WriteString(whereClause)
	}
	q.WriteString(" ORDER BY b.created_at")

	rows, err := p.db.Query(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list blockers: %w", err)
	}
	defer rows.Close()

	blockers := make([]entities.Blocker, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var b entities.Blocker
		if err := rows.Scan(
			&b.ID, &b.Category, &b.Priority, &b.Status, &b.Location,
			&b.CreatedAt, &b.CompletedAt, &b.AssignedActorID, &b.ProjectID, &b.HasDocumentation,
		); err != nil {
			p.log.Errorw("failed to scan blocker", "error", err)
			return nil, fmt.Errorf("scan blocker: %w", err)
		}
		blockers = append(blockers, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blockers: %w", err)
	}

	histories, err := p.loadHistories(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range blockers {
		blockers[i].StatusHistory = histories[blockers[i].ID]
	}
	return blockers, nil
}

func (p *Postgres) loadHistories(ctx context.Context, blockerIDs []string) (map[string][]entities.StatusChange, error) {
	histories := make(map[string][]entities.StatusChange, len(blockerIDs))
	if len(blockerIDs) == 0 {
		return histories, nil
	}

	rows, err := p.db.Query(ctx, blockerHistoryQuery, blockerIDs)
	if err != nil {
		return nil, fmt.Errorf("load blocker history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var blockerID string
		var ch entities.StatusChange
		if err := rows.Scan(&blockerID, &ch.Status, &ch.At); err != nil {
			return nil, fmt.Errorf("scan blocker history: %w", err)
		}
		histories[blockerID] = append(histories[blockerID], ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocker history: %w", err)
	}

	for id := range histories {
		h := histories[id]
		sort.SliceStable(h, func(i, j int) bool { return h[i].At.Before(h[j].At) })
	}
	return histories, nil
}

func buildBlockerFilter(filter entities.BlockerFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1
	if filter.ProjectID != "" {
		conditions = append(conditions, "b.project_id = $"+strconv.Itoa(idx))
		args = append(args, filter.ProjectID)
		idx++
	}
	if filter.Status != nil {
		conditions = append(conditions, "b.status = $"+strconv.Itoa(idx))
		args = append(args, *filter.Status)
		idx++
	}
	if filter.From != nil {
		conditions = append(conditions, "b.created_at >= $"+strconv.Itoa(idx))
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		conditions = append(conditions, "b.created_at <= $"+strconv.Itoa(idx))
		args = append(args, *filter.To)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
