package analytics

import (
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// InsightConfig holds the named thresholds of the insight rules.
type InsightConfig struct {
	// VolumeSharePercent is the share of total records the top group
	// must exceed to flag a high-volume category.
	VolumeSharePercent float64
	// VolumeSevereCount escalates a high-volume finding to high severity.
	VolumeSevereCount int
	// SlowResolutionDays flags a category as slow to resolve.
	SlowResolutionDays float64
	// SlowResolutionSevereDays escalates a slow category to high severity.
	SlowResolutionSevereDays float64
	// UnderperformanceSevereCount escalates when more than this many
	// actors sit in the poor tier.
	UnderperformanceSevereCount int
}

// DefaultInsightConfig returns the production thresholds.
func DefaultInsightConfig() InsightConfig {
	return InsightConfig{
		VolumeSharePercent:          30,
		VolumeSevereCount:           10,
		SlowResolutionDays:          5,
		SlowResolutionSevereDays:    10,
		UnderperformanceSevereCount: 2,
	}
}

// GenerateInsights runs the fixed, ordered rule list over prior
// aggregation outputs. Rules are independent: every applicable rule
// fires, none suppresses another, and rules without a qualifying
// condition emit nothing. Output order follows rule declaration order.
func (e *Engine) GenerateInsights(aggregations []entities.AggregationResult, stats entities.ResolutionStats, profiles map[string]entities.PerformanceProfile) []entities.Insight {
	out := make([]entities.Insight, 0, 4)
	if in, ok := e.highVolumeCategory(aggregations); ok {
		out = append(out, in)
	}
	if in, ok := e.slowResolution(stats); ok {
		out = append(out, in)
	}
	if in, ok := e.underperformance(profiles); ok {
		out = append(out, in)
	}
	if in, ok := e.excellence(profiles); ok {
		out = append(out, in)
	}
	return out
}

func (e *Engine) highVolumeCategory(aggregations []entities.AggregationResult) (entities.Insight, bool) {
	if len(aggregations) == 0 {
		return entities.Insight{}, false
	}
	total := 0
	for _, g := range aggregations {
		total += g.Count
	}
	top := aggregations[0]
	if total == 0 || float64(top.Count)/float64(total)*100 <= e.insights.VolumeSharePercent {
		return entities.Insight{}, false
	}
	severity := entities.SeverityMedium
	if top.Count > e.insights.VolumeSevereCount {
		severity = entities.SeverityHigh
	}
	return entities.Insight{
		Type:           "high_volume_category",
		Title:          fmt.Sprintf("%s dominates reported blockers", top.Key),
		Description:    fmt.Sprintf("%s accounts for %d of %d blockers in the window.", top.Key, top.Count, total),
		Recommendation: fmt.Sprintf("Review recurring %s issues for a systemic root cause.", top.Key),
		Severity:       severity,
	}, true
}

func (e *Engine) slowResolution(stats entities.ResolutionStats) (entities.Insight, bool) {
	var slowest *entities.AggregationResult
	for i := range stats.ByCategory {
		g := &stats.ByCategory[i]
		if g.ResolvedCount == 0 {
			continue
		}
		if slowest == nil || g.AvgResolutionHours > slowest.AvgResolutionHours {
			slowest = g
		}
	}
	if slowest == nil {
		return entities.Insight{}, false
	}
	days := slowest.AvgResolutionHours / 24
	if days <= e.insights.SlowResolutionDays {
		return entities.Insight{}, false
	}
	severity := entities.SeverityMedium
	if days > e.insights.SlowResolutionSevereDays {
		severity = entities.SeverityHigh
	}
	return entities.Insight{
		Type:           "slow_resolution",
		Title:          fmt.Sprintf("%s blockers resolve slowly", slowest.Key),
		Description:    fmt.Sprintf("%s blockers take %.1f days on average to resolve.", slowest.Key, days),
		Recommendation: fmt.Sprintf("Investigate resource or dependency bottlenecks behind %s work.", slowest.Key),
		Severity:       severity,
	}, true
}

func (e *Engine) underperformance(profiles map[string]entities.PerformanceProfile) (entities.Insight, bool) {
	poor := countTier(profiles, entities.TierPoor)
	if poor == 0 {
		return entities.Insight{}, false
	}
	severity := entities.SeverityMedium
	if poor > e.insights.UnderperformanceSevereCount {
		severity = entities.SeverityHigh
	}
	return entities.Insight{
		Type:           "underperformance",
		Title:          "Actors underperforming",
		Description:    fmt.Sprintf("%d actor(s) fall in the poor performance tier.", poor),
		Recommendation: "Pair underperforming actors with supervisors and rebalance assignments.",
		Severity:       severity,
	}, true
}

func (e *Engine) excellence(profiles map[string]entities.PerformanceProfile) (entities.Insight, bool) {
	excellent := countTier(profiles, entities.TierExcellent)
	if excellent == 0 {
		return entities.Insight{}, false
	}
	return entities.Insight{
		Type:           "excellence",
		Title:          "Top performers identified",
		Description:    fmt.Sprintf("%d actor(s) reach the excellent performance tier.", excellent),
		Recommendation: "Recognize top performers and spread their working practices.",
		Severity:       entities.SeverityPositive,
	}, true
}

func countTier(profiles map[string]entities.PerformanceProfile, tier entities.PerformanceTier) int {
	count := 0
	for _, p := range profiles {
		if p.Tier == tier {
			count++
		}
	}
	return count
}
