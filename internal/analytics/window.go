package analytics

import (
	"fmt"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// FilterWindow returns the records created within the last windowDays
// before now, inclusive of the window start. An empty input yields an
// empty output; a non-positive window is a caller bug.
func FilterWindow(records []entities.Blocker, windowDays int, now time.Time) ([]entities.Blocker, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: window_days must be positive, got %d", entities.ErrInvalidArgument, windowDays)
	}
	cutoff := now.AddDate(0, 0, -windowDays)
	out := make([]entities.Blocker, 0, len(records))
	for _, b := range records {
		if !b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}
