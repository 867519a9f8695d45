package analytics

import (
	"math"
	"sort"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

const maxBadges = 6

// Percentile tier labels.
const (
	PercentileTop10 = "top_10"
	PercentileTop25 = "top_25"
)

// badgeRule awards zero or one badge based on a ranked actor's
// metrics. Rules are evaluated in declaration order and badges are
// capped at maxBadges.
type badgeRule struct {
	name    string
	applies func(entities.RankedActor) bool
}

var badgeRules = []badgeRule{
	{"high_completion", func(a entities.RankedActor) bool { return a.CompletionRate >= 95 }},
	{"fast_resolver", func(a entities.RankedActor) bool { return a.Resolved > 0 && a.AvgResolutionHours <= 4 }},
	{"quality_leader", func(a entities.RankedActor) bool { return a.QualityScore >= 90 }},
	{"top_ranked", func(a entities.RankedActor) bool { return a.Rank == 1 }},
	{"century_club", func(a entities.RankedActor) bool { return a.Resolved >= 100 }},
	{"full_documentation", func(a entities.RankedActor) bool { return a.Assigned > 0 && a.DocumentationRate >= 100 }},
}

// RankActors orders actors with at least one assignment by completion
// rate descending, breaking ties by resolved count descending and then
// display name ascending, so identical inputs always rank identically.
// Percentile tiers and achievement badges are attached per rank.
func (e *Engine) RankActors(profiles map[string]entities.PerformanceProfile) []entities.RankedActor {
	ranked := make([]entities.RankedActor, 0, len(profiles))
	for _, p := range profiles {
		if p.Assigned == 0 {
			continue
		}
		ranked = append(ranked, entities.RankedActor{PerformanceProfile: p})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CompletionRate != ranked[j].CompletionRate {
			return ranked[i].CompletionRate > ranked[j].CompletionRate
		}
		if ranked[i].Resolved != ranked[j].Resolved {
			return ranked[i].Resolved > ranked[j].Resolved
		}
		return ranked[i].DisplayName < ranked[j].DisplayName
	})

	total := len(ranked)
	top10 := int(math.Ceil(0.10 * float64(total)))
	top25 := int(math.Ceil(0.25 * float64(total)))
	for i := range ranked {
		ranked[i].Rank = i + 1
		switch {
		case ranked[i].Rank <= top10:
			ranked[i].Percentile = PercentileTop10
		case ranked[i].Rank <= top25:
			ranked[i].Percentile = PercentileTop25
		}
		ranked[i].Badges = awardBadges(ranked[i])
	}
	return ranked
}

func awardBadges(a entities.RankedActor) []string {
	var badges []string
	for _, rule := range badgeRules {
		if len(badges) == maxBadges {
			break
		}
		if rule.applies(a) {
			badges = append(badges, rule.name)
		}
	}
	return badges
}
