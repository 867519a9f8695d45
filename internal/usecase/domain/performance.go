// Package domain contains application services orchestrating the
// analytics engine by actor performance.
package domain

import (
	"context"
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/analytics"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// ActorPerformance returns the performance profile for one actor over
// the window.
func (u *Usecase) ActorPerformance(ctx context.Context, actorID string, windowDays int) (entities.PerformanceProfile, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if actorID == "" {
		return entities.PerformanceProfile{}, fmt.Errorf("%w: actor_id is required", entities.ErrInvalidArgument)
	}
	if windowDays == 0 {
		windowDays = u.cfg.DefaultWindowDays
	}

	now := u.now()
	blockers, _, actors, err := u.snapshot(ctx, "", windowDays, now)
	if err != nil {
		return entities.PerformanceProfile{}, err
	}

	windowed, err := analytics.FilterWindow(blockers, windowDays, now)
	if err != nil {
		return entities.PerformanceProfile{}, err
	}
	profiles := u.engine.PerformanceProfiles(windowed, actors)
	profile, ok := profiles[actorID]
	if !ok {
		return entities.PerformanceProfile{}, entities.ErrActorNotFound
	}
	return profile, nil
}

// CompareTeam contrasts one team's blockers against the full
// population on completion rate, resolution time and resolved count.
func (u *Usecase) CompareTeam(ctx context.Context, teamID string, windowDays int) ([]entities.ComparativeMetric, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if windowDays == 0 {
		windowDays = u.cfg.DefaultWindowDays
	}

	now := u.now()
	blockers, _, actors, err := u.snapshot(ctx, "", windowDays, now)
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool)
	for _, a := range actors {
		if a.TeamID == teamID {
			members[a.ID] = true
		}
	}
	if len(members) == 0 {
		return nil, entities.ErrTeamNotFound
	}

	windowed, err := analytics.FilterWindow(blockers, windowDays, now)
	if err != nil {
		return nil, err
	}
	sub := make([]entities.Blocker, 0, len(windowed))
	for _, b := range windowed {
		if members[b.AssignedActorID] {
			sub = append(sub, b)
		}
	}

	return analytics.CompareSubpopulation(sub, windowed, []analytics.ComparisonMetric{
		analytics.MetricCompletionRate,
		analytics.MetricAvgResolutionHours,
		analytics.MetricTotalResolved,
	})
}
