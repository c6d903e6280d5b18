// Package stats reduces record series into the small summaries the advisor
// flows feed to the language model.
package stats

import "sort"

// Trend labels the direction of a chronological series.
type Trend string

const (
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient data"
)

// Ratios of latest/first that flip a series out of "stable".
const (
	IncreaseThreshold = 1.15
	DecreaseThreshold = 0.85
)

// Mean returns the arithmetic mean of values, or 0 when empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return Sum(values) / float64(len(values))
}

func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}

	return total
}

// DetectTrend compares the latest value of a chronologically ordered series
// against the first one.
func DetectTrend(values []float64) Trend {
	if len(values) < 2 {
		return TrendInsufficientData
	}

	first, latest := values[0], values[len(values)-1]
	switch {
	case latest > first*IncreaseThreshold:
		return TrendIncreasing
	case latest < first*DecreaseThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// PercentChange returns the change from first to latest in percent. A zero
// baseline yields 0.
func PercentChange(first, latest float64) float64 {
	if first == 0 {
		return 0
	}

	return (latest - first) / first * 100
}

// CategoryTotal is one bucket produced by SumBy.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SumBy groups items by key and sums value per group. The result is sorted by
// total descending, then category name.
func SumBy[T any](items []T, key func(T) string, value func(T) float64) []CategoryTotal {
	totals := make(map[string]float64)
	for _, item := range items {
		totals[key(item)] += value(item)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}

		return out[i].Category < out[j].Category
	})

	return out
}

// Reverse returns a copy of values in reverse order. Repositories return
// newest first; trend detection wants oldest first.
func Reverse[T any](values []T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}

	return out
}
