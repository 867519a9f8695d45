package usecase

import (
	"context"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/config"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/repository"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/usecase/domain"

	"go.uber.org/zap"
)

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, cfg config.AnalyticsConfig) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, cfg)
}
