// Package domain contains application services orchestrating domain
// logic by blocker lifecycle.
package domain

import (
	"context"
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// ReportBlocker records a new blocker after validating required fields
// and verifying the owning project exists.
func (u *Usecase) ReportBlocker(ctx context.Context, b entities.Blocker) (*entities.Blocker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if b.ProjectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if b.Status != "" && !b.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, b.Status)
	}
	if _, err := u.repo.GetProject(ctx, b.ProjectID); err != nil {
		return nil, err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = u.now()
	}

	created, err := u.repo.CreateBlocker(ctx, b)
	if err != nil {
		return nil, err
	}
	u.log.Infow("blocker reported", "blocker_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// AdvanceBlocker transitions a blocker to a new lifecycle status.
func (u *Usecase) AdvanceBlocker(ctx context.Context, blockerID string, status entities.BlockerStatus) (*entities.Blocker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if blockerID == "" {
		return nil, fmt.Errorf("%w: blocker_id is required", entities.ErrInvalidArgument)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}

	return u.repo.UpdateBlockerStatus(ctx, blockerID, status, u.now())
}
