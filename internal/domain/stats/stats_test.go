package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, Mean(nil), 1e-9)
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestDetectTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected Trend
	}{
		{name: "empty", values: nil, expected: TrendInsufficientData},
		{name: "single value", values: []float64{10}, expected: TrendInsufficientData},
		{name: "above upper threshold", values: []float64{100, 50, 116}, expected: TrendIncreasing},
		{name: "exactly upper threshold is stable", values: []float64{100, 115}, expected: TrendStable},
		{name: "below lower threshold", values: []float64{100, 200, 84}, expected: TrendDecreasing},
		{name: "exactly lower threshold is stable", values: []float64{100, 85}, expected: TrendStable},
		{name: "flat", values: []float64{40, 41, 39, 40}, expected: TrendStable},
		{name: "zero baseline grows", values: []float64{0, 1}, expected: TrendIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, DetectTrend(tt.values))
		})
	}
}

func TestPercentChange(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 50.0, PercentChange(10, 15), 1e-9)
	assert.InDelta(t, -25.0, PercentChange(100, 75), 1e-9)
	assert.InDelta(t, 0.0, PercentChange(0, 75), 1e-9)
}

func TestSumBy(t *testing.T) {
	t.Parallel()

	type entry struct {
		category string
		amount   float64
	}
	items := []entry{
		{"feed", 30},
		{"seed", 50},
		{"feed", 25},
		{"fuel", 55},
	}

	got := SumBy(items, func(e entry) string { return e.category }, func(e entry) float64 { return e.amount })

	assert.Equal(t, []CategoryTotal{
		{Category: "feed", Total: 55},
		{Category: "fuel", Total: 55},
		{Category: "seed", Total: 50},
	}, got)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 2, 1}, Reverse([]int{1, 2, 3}))
	assert.Empty(t, Reverse([]int{}))
}
