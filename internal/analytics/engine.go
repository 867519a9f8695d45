// Package analytics implements the pure aggregation engine that turns
// a snapshot of blocker records into frequency distributions,
// resolution statistics, performance scores, rankings, trends and
// rule-based insights. The package performs no I/O and reads no
// clocks; callers pass the reference time explicitly. All durations
// are expressed in hours.
package analytics

import (
	"fmt"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

const (
	defaultTopN     = 10
	defaultLongestN = 5
)

// Engine evaluates analytics over blocker snapshots using named,
// overridable thresholds.
type Engine struct {
	scoring  ScoringConfig
	insights InsightConfig
}

// New constructs an engine with explicit configuration.
func New(scoring ScoringConfig, insights InsightConfig) *Engine {
	return &Engine{scoring: scoring, insights: insights}
}

// NewDefault constructs an engine with the default thresholds.
func NewDefault() *Engine {
	return New(DefaultScoringConfig(), DefaultInsightConfig())
}

// ReportOptions parameterizes a report build.
type ReportOptions struct {
	Now        time.Time
	WindowDays int
	TopN       int
	LongestN   int
	TrendUnit  BucketUnit
}

// BuildReport runs the full pipeline over one snapshot: window filter,
// frequency aggregation, duration analysis, performance scoring,
// ranking, trend and insight generation. Inputs are never mutated.
func (e *Engine) BuildReport(records []entities.Blocker, projects []entities.Project, actors []entities.Actor, opts ReportOptions) (entities.Report, error) {
	if opts.WindowDays <= 0 {
		return entities.Report{}, fmt.Errorf("%w: window_days must be positive, got %d", entities.ErrInvalidArgument, opts.WindowDays)
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	longestN := opts.LongestN
	if longestN <= 0 {
		longestN = defaultLongestN
	}
	unit := opts.TrendUnit
	if unit == "" {
		unit = BucketDay
	}

	scoped := WithProjectLocations(records, projects)
	windowed, err := FilterWindow(scoped, opts.WindowDays, opts.Now)
	if err != nil {
		return entities.Report{}, err
	}

	// Insights consume the full distribution; only the report view is
	// truncated to topN.
	categories, err := AggregateByField(windowed, FieldCategory, 0)
	if err != nil {
		return entities.Report{}, err
	}
	byCategory := categories
	if len(byCategory) > topN {
		byCategory = byCategory[:topN]
	}
	byLocation, err := AggregateByField(windowed, FieldLocation, topN)
	if err != nil {
		return entities.Report{}, err
	}
	resolution, err := ResolutionStatsFor(windowed, longestN)
	if err != nil {
		return entities.Report{}, err
	}

	profiles := e.PerformanceProfiles(windowed, actors)
	leaderboard := e.RankActors(profiles)

	trend, err := BuildTrend(windowed, opts.WindowDays, unit, opts.Now)
	if err != nil {
		return entities.Report{}, err
	}

	return entities.Report{
		WindowDays:  opts.WindowDays,
		GeneratedAt: opts.Now,
		Total:       len(windowed),
		ByCategory:  byCategory,
		ByLocation:  byLocation,
		Resolution:  resolution,
		Leaderboard: leaderboard,
		Trend:       trend,
		Insights:    e.GenerateInsights(categories, resolution, profiles),
	}, nil
}

// WithProjectLocations returns a copy of records where empty locations
// fall back to the owning project's location. Records whose project is
// unknown keep their empty location and resolve to the documented
// fallback during aggregation.
func WithProjectLocations(records []entities.Blocker, projects []entities.Project) []entities.Blocker {
	if len(records) == 0 {
		return nil
	}
	locByProject := make(map[string]string, len(projects))
	for _, p := range projects {
		locByProject[p.ID] = p.Location
	}
	out := make([]entities.Blocker, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Location == "" {
			out[i].Location = locByProject[out[i].ProjectID]
		}
	}
	return out
}
