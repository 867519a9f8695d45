// Package entities contains core business entities.
package entities

import "time"

// AggregationResult is one group of a frequency aggregation.
// Durations are reported in hours; day-level rounding is a
// presentation concern.
type AggregationResult struct {
	Key                string  `json:"key"`
	Count              int     `json:"count"`
	ResolvedCount      int     `json:"resolved_count"`
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
	ResolutionRate     int     `json:"resolution_rate"`
}

// SlowResolution describes one of the longest-running resolved blockers.
type SlowResolution struct {
	BlockerID     string  `json:"blocker_id"`
	Category      string  `json:"category"`
	Location      string  `json:"location"`
	ActorID       string  `json:"actor_id,omitempty"`
	DurationHours float64 `json:"duration_hours"`
}

// ResolutionStats aggregates elapsed-time statistics over a record set.
type ResolutionStats struct {
	AvgHours   float64             `json:"avg_hours"`
	Resolved   int                 `json:"resolved"`
	Longest    []SlowResolution    `json:"longest"`
	ByCategory []AggregationResult `json:"by_category"`
}

// PerformanceTier is a coarse actor classification.
type PerformanceTier string

const (
	// TierExcellent marks top-performing actors.
	TierExcellent PerformanceTier = "excellent"
	// TierGood marks solid performers.
	TierGood PerformanceTier = "good"
	// TierAverage marks middling performers.
	TierAverage PerformanceTier = "average"
	// TierPoor marks underperformers.
	TierPoor PerformanceTier = "poor"
)

// PerformanceProfile contains per-actor performance metrics. Actors
// with no assigned blockers keep a zero profile with an empty tier.
type PerformanceProfile struct {
	ActorID            string          `json:"actor_id"`
	DisplayName        string          `json:"display_name"`
	Assigned           int             `json:"assigned"`
	Resolved           int             `json:"resolved"`
	Rejected           int             `json:"rejected"`
	CompletionRate     float64         `json:"completion_rate"`
	DocumentationRate  float64         `json:"documentation_rate"`
	RejectionPenalty   float64         `json:"rejection_penalty"`
	QualityScore       int             `json:"quality_score"`
	AvgResponseHours   float64         `json:"avg_response_hours"`
	AvgResolutionHours float64         `json:"avg_resolution_hours"`
	Tier               PerformanceTier `json:"tier,omitempty"`
}

// RankedActor is a leaderboard row.
type RankedActor struct {
	PerformanceProfile
	Rank       int      `json:"rank"`
	Percentile string   `json:"percentile,omitempty"`
	Badges     []string `json:"badges,omitempty"`
}

// TrendBucket is one fixed-size time bucket of created/resolved counts.
type TrendBucket struct {
	Key      string    `json:"key"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Created  int       `json:"created"`
	Resolved int       `json:"resolved"`
}

// WeeklyResponse is the average first-touch response time for one week.
// Weeks without samples are omitted from output.
type WeeklyResponse struct {
	Week             string  `json:"week"`
	AvgResponseHours float64 `json:"avg_response_hours"`
	Samples          int     `json:"samples"`
}

// ComparisonDirection indicates how a sub-population fares against the
// full population for a given metric.
type ComparisonDirection string

const (
	// DirectionImproving marks a sub-population doing better.
	DirectionImproving ComparisonDirection = "improving"
	// DirectionDeclining marks a sub-population doing worse.
	DirectionDeclining ComparisonDirection = "declining"
	// DirectionSteady marks no meaningful difference.
	DirectionSteady ComparisonDirection = "steady"
)

// ComparativeMetric contrasts one scalar metric between a
// sub-population and the full population.
type ComparativeMetric struct {
	Metric          string              `json:"metric"`
	SubValue        float64             `json:"sub_value"`
	PopulationValue float64             `json:"population_value"`
	Unit            string              `json:"unit"`
	Direction       ComparisonDirection `json:"direction"`
}

// InsightSeverity tags generated findings.
type InsightSeverity string

const (
	// SeverityHigh marks findings needing immediate attention.
	SeverityHigh InsightSeverity = "high"
	// SeverityMedium marks findings worth review.
	SeverityMedium InsightSeverity = "medium"
	// SeverityPositive marks good news.
	SeverityPositive InsightSeverity = "positive"
)

// Insight is a generated finding with a recommendation.
type Insight struct {
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	Severity       InsightSeverity `json:"severity"`
}

// ReportQuery parameterizes a report request. Zero values fall back to
// configured defaults; the trend unit is "day" or "week".
type ReportQuery struct {
	ProjectID  string
	WindowDays int
	TopN       int
	LongestN   int
	TrendUnit  string
}

// Report is the self-contained analytics snapshot returned to callers.
type Report struct {
	WindowDays  int                 `json:"window_days"`
	GeneratedAt time.Time           `json:"generated_at"`
	Total       int                 `json:"total"`
	ByCategory  []AggregationResult `json:"by_category"`
	ByLocation  []AggregationResult `json:"by_location"`
	Resolution  ResolutionStats     `json:"resolution"`
	Leaderboard []RankedActor       `json:"leaderboard"`
	Trend       []TrendBucket       `json:"trend"`
	Insights    []Insight           `json:"insights"`
}
