// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// BlockerInterface exposes blocker-related operations.
type BlockerInterface interface {
	CreateBlocker(ctx context.Context, b entities.Blocker) (*entities.Blocker, error)
	UpdateBlockerStatus(ctx context.Context, blockerID string, status entities.BlockerStatus, at time.Time) (*entities.Blocker, error)
	GetBlocker(ctx context.Context, blockerID string) (*entities.Blocker, error)
	ListBlockers(ctx context.Context, filter entities.BlockerFilter) ([]entities.Blocker, error)
}

// ActorInterface exposes roster operations.
type ActorInterface interface {
	ListActors(ctx context.Context) ([]entities.Actor, error)
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
}

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	BlockerInterface
	ActorInterface
	ProjectInterface
}
