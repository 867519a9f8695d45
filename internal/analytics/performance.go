package analytics

import (
	"math"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// ScoringConfig holds the named thresholds and weights of the
// performance scorer. Rates are percentages, durations are days.
type ScoringConfig struct {
	CompletionWeight       float64
	DocumentationWeight    float64
	RejectionWeight        float64
	RejectionPenaltyFactor float64

	ExcellentMinRate float64
	ExcellentMaxDays float64
	GoodMinRate      float64
	GoodMaxDays      float64
	AverageMinRate   float64
	AverageMaxDays   float64

	// FirstTouch is the status-history transition counted as the
	// actor's first response.
	FirstTouch entities.BlockerStatus
}

// DefaultScoringConfig returns the production thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		CompletionWeight:       0.5,
		DocumentationWeight:    0.3,
		RejectionWeight:        0.2,
		RejectionPenaltyFactor: 30,
		ExcellentMinRate:       90,
		ExcellentMaxDays:       3,
		GoodMinRate:            75,
		GoodMaxDays:            5,
		AverageMinRate:         50,
		AverageMaxDays:         8,
		FirstTouch:             entities.StatusAssigned,
	}
}

// PerformanceProfiles computes a profile per roster actor over the
// records assigned to them. Actors with zero assigned records keep a
// zero profile with an empty tier; they are absent from leaderboards,
// not "poor". Documentation rate is vacuously perfect at zero
// assignments.
func (e *Engine) PerformanceProfiles(records []entities.Blocker, actors []entities.Actor) map[string]entities.PerformanceProfile {
	type actorAccum struct {
		assigned      int
		resolved      int
		rejected      int
		documented    int
		durationSum   float64
		durationCount int
		responseSum   float64
		responseCount int
	}

	accum := make(map[string]*actorAccum, len(actors))
	for _, a := range actors {
		accum[a.ID] = &actorAccum{}
	}
	for _, b := range records {
		acc, ok := accum[b.AssignedActorID]
		if !ok {
			continue
		}
		acc.assigned++
		if b.HasDocumentation {
			acc.documented++
		}
		if b.Status == entities.StatusRejected {
			acc.rejected++
		}
		if hours, ok := resolutionHours(b); ok {
			acc.resolved++
			acc.durationSum += hours
			acc.durationCount++
		}
		if hours, ok := ResponseHours(b, e.scoring.FirstTouch); ok {
			acc.responseSum += hours
			acc.responseCount++
		}
	}

	profiles := make(map[string]entities.PerformanceProfile, len(actors))
	for _, a := range actors {
		acc := accum[a.ID]
		p := entities.PerformanceProfile{
			ActorID:           a.ID,
			DisplayName:       a.DisplayName,
			Assigned:          acc.assigned,
			Resolved:          acc.resolved,
			Rejected:          acc.rejected,
			DocumentationRate: 100,
		}
		if acc.assigned > 0 {
			p.CompletionRate = float64(acc.resolved) / float64(acc.assigned) * 100
			p.DocumentationRate = float64(acc.documented) / float64(acc.assigned) * 100
			p.RejectionPenalty = float64(acc.rejected) / float64(acc.assigned) * e.scoring.RejectionPenaltyFactor
		}
		if acc.durationCount > 0 {
			p.AvgResolutionHours = acc.durationSum / float64(acc.durationCount)
		}
		if acc.responseCount > 0 {
			p.AvgResponseHours = acc.responseSum / float64(acc.responseCount)
		}
		p.QualityScore = qualityScore(e.scoring, p)
		if acc.assigned > 0 {
			p.Tier = e.classifyTier(p.CompletionRate, p.AvgResolutionHours)
		}
		profiles[a.ID] = p
	}
	return profiles
}

// qualityScore blends completion, documentation and rejection into a
// clamped 0-100 composite.
func qualityScore(cfg ScoringConfig, p entities.PerformanceProfile) int {
	raw := p.CompletionRate*cfg.CompletionWeight +
		p.DocumentationRate*cfg.DocumentationWeight +
		(100-p.RejectionPenalty)*cfg.RejectionWeight
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// classifyTier evaluates the tier table top-down; first match wins.
func (e *Engine) classifyTier(completionRate, avgResolutionHours float64) entities.PerformanceTier {
	days := avgResolutionHours / 24
	switch {
	case completionRate >= e.scoring.ExcellentMinRate && days <= e.scoring.ExcellentMaxDays:
		return entities.TierExcellent
	case completionRate >= e.scoring.GoodMinRate && days <= e.scoring.GoodMaxDays:
		return entities.TierGood
	case completionRate >= e.scoring.AverageMinRate && days <= e.scoring.AverageMaxDays:
		return entities.TierAverage
	default:
		return entities.TierPoor
	}
}
