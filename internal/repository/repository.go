// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/config"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/repository/postgres"

	"go.uber.org/zap"
)

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
