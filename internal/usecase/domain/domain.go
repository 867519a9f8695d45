// Package domain contains application services orchestrating the
// analytics engine over repository snapshots.
package domain

import (
	"context"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/config"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/analytics"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	engine  *analytics.Engine
	cfg     config.AnalyticsConfig

	// now is swapped in tests for deterministic reports.
	now func() time.Time
}

// New constructs a new usecase layer with its dependencies. The
// analytics engine thresholds come from configuration; scoring weights
// keep their production defaults.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	cfg config.AnalyticsConfig,
) *Usecase {
	insights := analytics.InsightConfig{
		VolumeSharePercent:          cfg.VolumeSharePercent,
		VolumeSevereCount:           cfg.VolumeSevereCount,
		SlowResolutionDays:          cfg.SlowResolutionDays,
		SlowResolutionSevereDays:    cfg.SlowResolutionSevereDays,
		UnderperformanceSevereCount: cfg.UnderperformanceSevereCount,
	}
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		engine:  analytics.New(analytics.DefaultScoringConfig(), insights),
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
