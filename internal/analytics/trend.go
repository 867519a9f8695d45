package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// BucketUnit selects the trend bucket size.
type BucketUnit string

const (
	// BucketDay produces one bucket per day.
	BucketDay BucketUnit = "day"
	// BucketWeek produces one bucket per 7-day span, keyed by ISO week.
	BucketWeek BucketUnit = "week"
)

// BuildTrend buckets records into contiguous, non-overlapping time
// buckets ending at now, oldest first. A D-day window with day
// granularity yields exactly D buckets. Buckets are half-open
// [start, end), except the last one, which also includes the window's
// closing instant so a record stamped exactly at now is not dropped.
// Created and resolved are counted independently: a record created in
// one bucket may resolve in a later one. Unknown units and
// non-positive windows are caller bugs.
func BuildTrend(records []entities.Blocker, windowDays int, unit BucketUnit, now time.Time) ([]entities.TrendBucket, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: window_days must be positive, got %d", entities.ErrInvalidArgument, windowDays)
	}

	var span time.Duration
	var count int
	switch unit {
	case BucketDay:
		span = 24 * time.Hour
		count = windowDays
	case BucketWeek:
		span = 7 * 24 * time.Hour
		count = (windowDays + 6) / 7
	default:
		return nil, fmt.Errorf("%w: unknown bucket unit %q", entities.ErrInvalidArgument, unit)
	}

	buckets := make([]entities.TrendBucket, count)
	for i := range buckets {
		start := now.Add(-time.Duration(count-i) * span)
		end := start.Add(span)
		key := start.Format("2006-01-02")
		if unit == BucketWeek {
			key = isoWeekKey(start)
		}
		buckets[i] = entities.TrendBucket{Key: key, Start: start, End: end}
	}

	windowStart := buckets[0].Start
	locate := func(t time.Time) int {
		if t.Before(windowStart) || t.After(now) {
			return -1
		}
		idx := int(t.Sub(windowStart) / span)
		if idx >= count {
			idx = count - 1
		}
		return idx
	}

	for _, b := range records {
		if i := locate(b.CreatedAt); i >= 0 {
			buckets[i].Created++
		}
		if b.Resolved() {
			if i := locate(*b.CompletedAt); i >= 0 {
				buckets[i].Resolved++
			}
		}
	}
	return buckets, nil
}

// ResponseTimeByWeek averages first-touch response times per ISO week
// of record creation. Weeks with no response samples are omitted, not
// zero-filled. Output is ordered chronologically.
func ResponseTimeByWeek(records []entities.Blocker, firstTouch entities.BlockerStatus) []entities.WeeklyResponse {
	type weekAccum struct {
		sum     float64
		samples int
		ord     int
	}
	accum := make(map[string]*weekAccum)
	for _, b := range records {
		hours, ok := ResponseHours(b, firstTouch)
		if !ok {
			continue
		}
		key := isoWeekKey(b.CreatedAt)
		w, found := accum[key]
		if !found {
			year, week := b.CreatedAt.ISOWeek()
			w = &weekAccum{ord: year*100 + week}
			accum[key] = w
		}
		w.sum += hours
		w.samples++
	}

	out := make([]entities.WeeklyResponse, 0, len(accum))
	for key, w := range accum {
		out = append(out, entities.WeeklyResponse{
			Week:             key,
			AvgResponseHours: w.sum / float64(w.samples),
			Samples:          w.samples,
		})
	}
	ord := func(key string) int { return accum[key].ord }
	sort.Slice(out, func(i, j int) bool { return ord(out[i].Week) < ord(out[j].Week) })
	return out
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
