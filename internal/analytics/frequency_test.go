package analytics

import (
	"testing"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestAggregateByFieldOrdersByCountDescending(t *testing.T) {
	records := make([]entities.Blocker, 0, 10)
	for i := 0; i < 6; i++ {
		records = append(records, created("e", "Electrical", float64(i+1)))
	}
	for i := 0; i < 3; i++ {
		records = append(records, created("p", "Plumbing", float64(i+1)))
	}
	records = append(records, created("h", "HVAC", 1))

	groups, err := AggregateByField(records, FieldCategory, 10)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "Electrical", groups[0].Key)
	require.Equal(t, 6, groups[0].Count)
	require.Equal(t, "Plumbing", groups[1].Key)
	require.Equal(t, 3, groups[1].Count)
	require.Equal(t, "HVAC", groups[2].Key)
	require.Equal(t, 1, groups[2].Count)
}

func TestAggregateByFieldCountsAreTotal(t *testing.T) {
	records := []entities.Blocker{
		created("1", "Electrical", 1),
		created("2", "Plumbing", 2),
		created("3", "", 3),
		created("4", "Electrical", 4),
	}

	groups, err := AggregateByField(records, FieldCategory, 0)
	require.NoError(t, err)

	sum := 0
	for _, g := range groups {
		sum += g.Count
	}
	require.Equal(t, len(records), sum)
}

func TestAggregateByFieldTieBreakIsFirstSeen(t *testing.T) {
	records := []entities.Blocker{
		created("1", "Scaffolding", 1),
		created("2", "Concrete", 2),
		created("3", "Scaffolding", 3),
		created("4", "Concrete", 4),
	}

	// Equal counts keep insertion order across repeated runs.
	for i := 0; i < 10; i++ {
		groups, err := AggregateByField(records, FieldCategory, 10)
		require.NoError(t, err)
		require.Equal(t, "Scaffolding", groups[0].Key)
		require.Equal(t, "Concrete", groups[1].Key)
	}
}

func TestAggregateByFieldFallbackKeys(t *testing.T) {
	records := []entities.Blocker{
		created("1", "", 1),
		{ID: "2", Status: entities.StatusPending, CreatedAt: testNow.Add(-1)},
	}

	byCategory, err := AggregateByField(records, FieldCategory, 0)
	require.NoError(t, err)
	require.Equal(t, FallbackCategory, byCategory[0].Key)

	byLocation, err := AggregateByField(records, FieldLocation, 0)
	require.NoError(t, err)
	require.Equal(t, FallbackLocation, byLocation[0].Key)

	byActor, err := AggregateByField(records, FieldActor, 0)
	require.NoError(t, err)
	require.Equal(t, "unassigned", byActor[0].Key)
}

func TestAggregateByFieldTruncatesToTopN(t *testing.T) {
	records := []entities.Blocker{
		created("1", "A", 1), created("2", "A", 1),
		created("3", "B", 1),
		created("4", "C", 1),
	}

	groups, err := AggregateByField(records, FieldCategory, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "A", groups[0].Key)
}

func TestAggregateByFieldResolutionRateBounds(t *testing.T) {
	records := []entities.Blocker{
		resolved("1", "A", 10, 2),
		created("2", "A", 5),
		resolved("3", "B", 10, 4),
	}

	groups, err := AggregateByField(records, FieldCategory, 0)
	require.NoError(t, err)
	for _, g := range groups {
		require.GreaterOrEqual(t, g.ResolutionRate, 0)
		require.LessOrEqual(t, g.ResolutionRate, 100)
	}
	require.Equal(t, 50, groups[0].ResolutionRate)
	require.Equal(t, 100, groups[1].ResolutionRate)
}

func TestAggregateByFieldUnknownField(t *testing.T) {
	_, err := AggregateByField(nil, GroupField("severity"), 10)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestAggregateByFieldEmptyInput(t *testing.T) {
	groups, err := AggregateByField(nil, FieldCategory, 10)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestRepeatGroupsThreshold(t *testing.T) {
	records := []entities.Blocker{
		created("1", "A", 1), created("2", "A", 1), created("3", "A", 1),
		created("4", "B", 1), created("5", "B", 1),
		created("6", "C", 1),
	}

	repeats, err := RepeatGroups(records, FieldCategory, 2)
	require.NoError(t, err)
	require.Len(t, repeats, 2)

	problemAreas, err := RepeatGroups(records, FieldCategory, 3)
	require.NoError(t, err)
	require.Len(t, problemAreas, 1)
	require.Equal(t, "A", problemAreas[0].Key)

	_, err = RepeatGroups(records, FieldCategory, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
