package analytics

import (
	"testing"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/stretchr/testify/require"
)

func profileWith(id, name string, completionRate float64, resolvedCount, assigned int) entities.PerformanceProfile {
	return entities.PerformanceProfile{
		ActorID:        id,
		DisplayName:    name,
		Assigned:       assigned,
		Resolved:       resolvedCount,
		CompletionRate: completionRate,
	}
}

func TestRankActorsTieBreakByResolvedCount(t *testing.T) {
	e := NewDefault()
	profiles := map[string]entities.PerformanceProfile{
		"a": profileWith("a", "Alice", 80, 8, 10),
		"b": profileWith("b", "Bob", 80, 12, 15),
	}

	ranked := e.RankActors(profiles)
	require.Len(t, ranked, 2)
	require.Equal(t, "b", ranked[0].ActorID)
	require.Equal(t, 1, ranked[0].Rank)
	require.Equal(t, "a", ranked[1].ActorID)
}

func TestRankActorsTieBreakByDisplayName(t *testing.T) {
	e := NewDefault()
	profiles := map[string]entities.PerformanceProfile{
		"z": profileWith("z", "Zara", 80, 8, 10),
		"a": profileWith("a", "Alice", 80, 8, 10),
	}

	ranked := e.RankActors(profiles)
	require.Equal(t, "Alice", ranked[0].DisplayName)
	require.Equal(t, "Zara", ranked[1].DisplayName)
}

func TestRankActorsDeterministic(t *testing.T) {
	e := NewDefault()
	profiles := map[string]entities.PerformanceProfile{
		"a": profileWith("a", "Alice", 90, 9, 10),
		"b": profileWith("b", "Bob", 90, 9, 10),
		"c": profileWith("c", "Cara", 70, 7, 10),
		"d": profileWith("d", "Dave", 70, 14, 20),
	}

	first := e.RankActors(profiles)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, e.RankActors(profiles))
	}
}

func TestRankActorsExcludesZeroAssigned(t *testing.T) {
	e := NewDefault()
	profiles := map[string]entities.PerformanceProfile{
		"busy": profileWith("busy", "Busy", 50, 5, 10),
		"idle": profileWith("idle", "Idle", 0, 0, 0),
	}

	ranked := e.RankActors(profiles)
	require.Len(t, ranked, 1)
	require.Equal(t, "busy", ranked[0].ActorID)
}

func TestRankActorsPercentiles(t *testing.T) {
	e := NewDefault()
	profiles := make(map[string]entities.PerformanceProfile, 10)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, n := range names {
		profiles[n] = profileWith(n, n, float64(100-i), 10-i, 10)
	}

	ranked := e.RankActors(profiles)
	require.Len(t, ranked, 10)
	// ceil(0.10*10)=1, ceil(0.25*10)=3.
	require.Equal(t, PercentileTop10, ranked[0].Percentile)
	require.Equal(t, PercentileTop25, ranked[1].Percentile)
	require.Equal(t, PercentileTop25, ranked[2].Percentile)
	require.Empty(t, ranked[3].Percentile)
}

func TestRankActorsBadgesFollowRuleOrder(t *testing.T) {
	e := NewDefault()
	p := profileWith("a", "Alice", 100, 120, 120)
	p.QualityScore = 95
	p.DocumentationRate = 100
	p.AvgResolutionHours = 2

	ranked := e.RankActors(map[string]entities.PerformanceProfile{"a": p})
	require.Len(t, ranked, 1)
	require.Equal(t, []string{
		"high_completion",
		"fast_resolver",
		"quality_leader",
		"top_ranked",
		"century_club",
		"full_documentation",
	}, ranked[0].Badges)
	require.LessOrEqual(t, len(ranked[0].Badges), 6)
}
