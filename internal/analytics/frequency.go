package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// GroupField selects the record field a frequency aggregation groups by.
type GroupField string

const (
	// FieldCategory groups by blocker category.
	FieldCategory GroupField = "category"
	// FieldLocation groups by blocker location.
	FieldLocation GroupField = "location"
	// FieldPriority groups by priority.
	FieldPriority GroupField = "priority"
	// FieldStatus groups by lifecycle status.
	FieldStatus GroupField = "status"
	// FieldActor groups by assigned actor.
	FieldActor GroupField = "actor"
)

// Fallback keys used when a record carries no value for the grouped
// field. Groups never get a null/empty key.
const (
	FallbackCategory = "Other"
	FallbackLocation = "Unknown Location"
	fallbackActor    = "unassigned"
	fallbackGeneric  = "unspecified"
)

// AggregateByField groups records by the given field, ranks groups by
// count descending and truncates to topN. Ties keep first-seen order:
// the sort is stable over the insertion order of keys, so results are
// deterministic regardless of map iteration. topN <= 0 disables
// truncation.
func AggregateByField(records []entities.Blocker, field GroupField, topN int) ([]entities.AggregationResult, error) {
	groups, err := collectGroups(records, field)
	if err != nil {
		return nil, err
	}
	if topN > 0 && len(groups) > topN {
		groups = groups[:topN]
	}
	return groups, nil
}

// RepeatGroups is the repeat-offender variant of AggregateByField: it
// keeps only groups whose count reaches minCount. Use minCount 2 for
// simple repeats, 3 for problem-area detection.
func RepeatGroups(records []entities.Blocker, field GroupField, minCount int) ([]entities.AggregationResult, error) {
	if minCount < 1 {
		return nil, fmt.Errorf("%w: min_count must be at least 1, got %d", entities.ErrInvalidArgument, minCount)
	}
	groups, err := collectGroups(records, field)
	if err != nil {
		return nil, err
	}
	out := groups[:0:0]
	for _, g := range groups {
		if g.Count >= minCount {
			out = append(out, g)
		}
	}
	return out, nil
}

type groupAccum struct {
	count         int
	resolved      int
	durationSum   float64
	durationCount int
}

func collectGroups(records []entities.Blocker, field GroupField) ([]entities.AggregationResult, error) {
	if !validField(field) {
		return nil, fmt.Errorf("%w: unknown group field %q", entities.ErrInvalidArgument, field)
	}

	accum := make(map[string]*groupAccum)
	order := make([]string, 0)
	for _, b := range records {
		key := groupKey(b, field)
		g, ok := accum[key]
		if !ok {
			g = &groupAccum{}
			accum[key] = g
			order = append(order, key)
		}
		g.count++
		if hours, ok := resolutionHours(b); ok {
			g.resolved++
			g.durationSum += hours
			g.durationCount++
		}
	}

	out := make([]entities.AggregationResult, 0, len(order))
	for _, key := range order {
		g := accum[key]
		res := entities.AggregationResult{
			Key:           key,
			Count:         g.count,
			ResolvedCount: g.resolved,
		}
		if g.durationCount > 0 {
			res.AvgResolutionHours = g.durationSum / float64(g.durationCount)
		}
		if g.count > 0 {
			res.ResolutionRate = int(math.Round(float64(g.resolved) / float64(g.count) * 100))
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func validField(field GroupField) bool {
	switch field {
	case FieldCategory, FieldLocation, FieldPriority, FieldStatus, FieldActor:
		return true
	}
	return false
}

func groupKey(b entities.Blocker, field GroupField) string {
	switch field {
	case FieldCategory:
		if b.Category == "" {
			return FallbackCategory
		}
		return b.Category
	case FieldLocation:
		if b.Location == "" {
			return FallbackLocation
		}
		return b.Location
	case FieldPriority:
		if b.Priority == "" {
			return fallbackGeneric
		}
		return string(b.Priority)
	case FieldStatus:
		if b.Status == "" {
			return fallbackGeneric
		}
		return string(b.Status)
	case FieldActor:
		if b.AssignedActorID == "" {
			return fallbackActor
		}
		return b.AssignedActorID
	}
	return fallbackGeneric
}
