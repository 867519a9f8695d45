package analytics

import (
	"fmt"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// ComparisonMetric names a scalar metric the comparative analyzer
// understands.
type ComparisonMetric string

const (
	// MetricCompletionRate compares resolution percentages; higher is better.
	MetricCompletionRate ComparisonMetric = "completion_rate"
	// MetricAvgResolutionHours compares mean resolution times; lower is better.
	MetricAvgResolutionHours ComparisonMetric = "avg_resolution_hours"
	// MetricTotalResolved compares resolved counts; higher is better.
	MetricTotalResolved ComparisonMetric = "total_resolved"
)

// metricSpec declares per-metric semantics. Direction is never
// inferred generically: each metric states whether higher is better.
type metricSpec struct {
	unit           string
	higherIsBetter bool
	value          func([]entities.Blocker) float64
}

var metricSpecs = map[ComparisonMetric]metricSpec{
	MetricCompletionRate: {
		unit:           "percent",
		higherIsBetter: true,
		value: func(records []entities.Blocker) float64 {
			if len(records) == 0 {
				return 0
			}
			resolved := 0
			for _, b := range records {
				if b.Resolved() {
					resolved++
				}
			}
			return float64(resolved) / float64(len(records)) * 100
		},
	},
	MetricAvgResolutionHours: {
		unit:           "hours",
		higherIsBetter: false,
		value: func(records []entities.Blocker) float64 {
			var sum float64
			count := 0
			for _, b := range records {
				if hours, ok := resolutionHours(b); ok {
					sum += hours
					count++
				}
			}
			if count == 0 {
				return 0
			}
			return sum / float64(count)
		},
	},
	MetricTotalResolved: {
		unit:           "count",
		higherIsBetter: true,
		value: func(records []entities.Blocker) float64 {
			resolved := 0
			for _, b := range records {
				if b.Resolved() {
					resolved++
				}
			}
			return float64(resolved)
		},
	},
}

// CompareSubpopulation computes each requested metric for a
// sub-population (one team, one project) and the full population, and
// tags the result with the metric-specific direction.
func CompareSubpopulation(sub, all []entities.Blocker, metrics []ComparisonMetric) ([]entities.ComparativeMetric, error) {
	out := make([]entities.ComparativeMetric, 0, len(metrics))
	for _, m := range metrics {
		spec, ok := metricSpecs[m]
		if !ok {
			return nil, fmt.Errorf("%w: unknown comparison metric %q", entities.ErrInvalidArgument, m)
		}
		subValue := spec.value(sub)
		popValue := spec.value(all)
		out = append(out, entities.ComparativeMetric{
			Metric:          string(m),
			SubValue:        subValue,
			PopulationValue: popValue,
			Unit:            spec.unit,
			Direction:       direction(subValue, popValue, spec.higherIsBetter),
		})
	}
	return out, nil
}

func direction(sub, pop float64, higherIsBetter bool) entities.ComparisonDirection {
	switch {
	case sub == pop:
		return entities.DirectionSteady
	case (sub > pop) == higherIsBetter:
		return entities.DirectionImproving
	default:
		return entities.DirectionDeclining
	}
}
