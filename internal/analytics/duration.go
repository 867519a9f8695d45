package analytics

import (
	"fmt"
	"sort"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// resolutionHours returns the creation-to-resolution duration for a
// verified-complete record. Unresolved records and records with a
// completion timestamp before creation contribute nothing — they are
// excluded from duration statistics, never coerced to zero.
func resolutionHours(b entities.Blocker) (float64, bool) {
	if !b.Resolved() {
		return 0, false
	}
	return b.CompletedAt.Sub(b.CreatedAt).Hours(), true
}

// ResponseHours returns the creation-to-first-touch duration, where
// first touch is the earliest status-history transition matching the
// given status. History is sorted defensively before scanning. Records
// with no matching transition contribute nothing.
func ResponseHours(b entities.Blocker, firstTouch entities.BlockerStatus) (float64, bool) {
	if len(b.StatusHistory) == 0 {
		return 0, false
	}
	history := make([]entities.StatusChange, len(b.StatusHistory))
	copy(history, b.StatusHistory)
	sort.SliceStable(history, func(i, j int) bool { return history[i].At.Before(history[j].At) })
	for _, ch := range history {
		if ch.Status == firstTouch {
			return ch.At.Sub(b.CreatedAt).Hours(), true
		}
	}
	return 0, false
}

// ResolutionStatsFor computes elapsed-time statistics across the
// record set: the mean resolution duration, the longestN slowest
// resolutions with supporting metadata, and per-category aggregates.
func ResolutionStatsFor(records []entities.Blocker, longestN int) (entities.ResolutionStats, error) {
	if longestN < 0 {
		return entities.ResolutionStats{}, fmt.Errorf("%w: longest_n must not be negative, got %d", entities.ErrInvalidArgument, longestN)
	}

	resolved := make([]entities.SlowResolution, 0)
	var sum float64
	for _, b := range records {
		hours, ok := resolutionHours(b)
		if !ok {
			continue
		}
		sum += hours
		category := b.Category
		if category == "" {
			category = FallbackCategory
		}
		location := b.Location
		if location == "" {
			location = FallbackLocation
		}
		resolved = append(resolved, entities.SlowResolution{
			BlockerID:     b.ID,
			Category:      category,
			Location:      location,
			ActorID:       b.AssignedActorID,
			DurationHours: hours,
		})
	}

	stats := entities.ResolutionStats{Resolved: len(resolved)}
	if len(resolved) > 0 {
		stats.AvgHours = sum / float64(len(resolved))
	}

	sort.SliceStable(resolved, func(i, j int) bool { return resolved[i].DurationHours > resolved[j].DurationHours })
	if len(resolved) > longestN {
		resolved = resolved[:longestN]
	}
	stats.Longest = resolved

	byCategory, err := AggregateByField(records, FieldCategory, 0)
	if err != nil {
		return entities.ResolutionStats{}, err
	}
	stats.ByCategory = byCategory
	return stats, nil
}
