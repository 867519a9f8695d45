package usecase

import (
	"context"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// ReportUsecaseInterface abstracts analytics report operations for the
// delivery layer.
type ReportUsecaseInterface interface {
	BuildReport(ctx context.Context, q entities.ReportQuery) (entities.Report, error)
	Trend(ctx context.Context, projectID string, windowDays int, unit string) ([]entities.TrendBucket, error)
	WeeklyResponse(ctx context.Context, projectID string, windowDays int) ([]entities.WeeklyResponse, error)
}

// PerformanceUsecaseInterface abstracts actor performance operations.
type PerformanceUsecaseInterface interface {
	ActorPerformance(ctx context.Context, actorID string, windowDays int) (entities.PerformanceProfile, error)
	CompareTeam(ctx context.Context, teamID string, windowDays int) ([]entities.ComparativeMetric, error)
}

// BlockerUsecaseInterface abstracts blocker lifecycle operations.
type BlockerUsecaseInterface interface {
	ReportBlocker(ctx context.Context, b entities.Blocker) (*entities.Blocker, error)
	AdvanceBlocker(ctx context.Context, blockerID string, status entities.BlockerStatus) (*entities.Blocker, error)
}

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReportUsecaseInterface
	PerformanceUsecaseInterface
	BlockerUsecaseInterface
}
