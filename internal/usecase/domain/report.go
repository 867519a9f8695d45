// Package domain contains application services orchestrating the
// analytics engine by report.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/analytics"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// BuildReport fetches the snapshot for the query and runs the full
// analytics pipeline over it.
func (u *Usecase) BuildReport(ctx context.Context, q entities.ReportQuery) (entities.Report, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if q.WindowDays == 0 {
		q.WindowDays = u.cfg.DefaultWindowDays
	}
	if q.WindowDays < 0 {
		return entities.Report{}, fmt.Errorf("%w: window_days must be positive", entities.ErrInvalidArgument)
	}
	if q.TopN == 0 {
		q.TopN = u.cfg.DefaultTopN
	}
	if q.LongestN == 0 {
		q.LongestN = u.cfg.DefaultLongestN
	}
	unit, err := trendUnit(q.TrendUnit)
	if err != nil {
		return entities.Report{}, err
	}

	now := u.now()
	blockers, projects, actors, err := u.snapshot(ctx, q.ProjectID, q.WindowDays, now)
	if err != nil {
		return entities.Report{}, err
	}

	report, err := u.engine.BuildReport(blockers, projects, actors, analytics.ReportOptions{
		Now:        now,
		WindowDays: q.WindowDays,
		TopN:       q.TopN,
		LongestN:   q.LongestN,
		TrendUnit:  unit,
	})
	if err != nil {
		return entities.Report{}, err
	}
	u.log.Infow("report built", "project_id", q.ProjectID, "window_days", q.WindowDays, "total", report.Total)
	return report, nil
}

// Trend returns created/resolved counts bucketed over the window.
func (u *Usecase) Trend(ctx context.Context, projectID string, windowDays int, unit string) ([]entities.TrendBucket, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if windowDays == 0 {
		windowDays = u.cfg.DefaultWindowDays
	}
	bucketUnit, err := trendUnit(unit)
	if err != nil {
		return nil, err
	}

	now := u.now()
	blockers, projects, _, err := u.snapshot(ctx, projectID, windowDays, now)
	if err != nil {
		return nil, err
	}
	scoped := analytics.WithProjectLocations(blockers, projects)
	return analytics.BuildTrend(scoped, windowDays, bucketUnit, now)
}

// WeeklyResponse returns the average first-touch response time per
// ISO week over the window.
func (u *Usecase) WeeklyResponse(ctx context.Context, projectID string, windowDays int) ([]entities.WeeklyResponse, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if windowDays == 0 {
		windowDays = u.cfg.DefaultWindowDays
	}

	now := u.now()
	blockers, _, _, err := u.snapshot(ctx, projectID, windowDays, now)
	if err != nil {
		return nil, err
	}
	windowed, err := analytics.FilterWindow(blockers, windowDays, now)
	if err != nil {
		return nil, err
	}
	return analytics.ResponseTimeByWeek(windowed, entities.StatusAssigned), nil
}

// snapshot loads the blocker/project/actor state the engine consumes.
// The window cutoff is pushed down to the store; the engine re-applies
// it against the same reference time.
func (u *Usecase) snapshot(ctx context.Context, projectID string, windowDays int, now time.Time) ([]entities.Blocker, []entities.Project, []entities.Actor, error) {
	from := now.AddDate(0, 0, -windowDays)
	blockers, err := u.repo.ListBlockers(ctx, entities.BlockerFilter{ProjectID: projectID, From: &from})
	if err != nil {
		return nil, nil, nil, err
	}
	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	actors, err := u.repo.ListActors(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return blockers, projects, actors, nil
}

func trendUnit(unit string) (analytics.BucketUnit, error) {
	switch unit {
	case "", string(analytics.BucketDay):
		return analytics.BucketDay, nil
	case string(analytics.BucketWeek):
		return analytics.BucketWeek, nil
	default:
		return "", fmt.Errorf("%w: unknown trend unit %q", entities.ErrInvalidArgument, unit)
	}
}
