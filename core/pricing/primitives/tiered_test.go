package primitives

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestIntervalQuantity covers the below, inside and saturated branches
func TestIntervalQuantity(t *testing.T) {
	tests := []struct {
		name     string
		min      string
		value    string
		max      *decimal.Decimal
		expected string
	}{
		{name: "below interval", min: "100", value: "50", max: Bound(200), expected: "0"},
		{name: "at lower edge", min: "100", value: "100", max: Bound(200), expected: "0"},
		{name: "inside interval", min: "100", value: "150", max: Bound(200), expected: "50"},
		{name: "at upper edge saturates", min: "100", value: "200", max: Bound(200), expected: "100"},
		{name: "above interval saturates", min: "100", value: "1000", max: Bound(200), expected: "100"},
		{name: "unbounded never saturates", min: "300", value: "1000000", max: nil, expected: "999700"},
		{name: "fractional value", min: "0", value: "0.75", max: Bound(1), expected: "0.75"},
		{name: "negative value", min: "0", value: "-3", max: Bound(10), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalQuantity(d(tt.min), d(tt.value), tt.max)
			assert.Truef(t, d(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

// TestIntervalQuantityPartition proves the per-interval amounts sum back to the value
func TestIntervalQuantityPartition(t *testing.T) {
	tables := map[string][]Interval{
		"single unbounded": {
			{MinRange: d("0")},
		},
		"reference tiers": {
			{MinRange: d("0"), MaxRange: Bound(100)},
			{MinRange: d("100"), MaxRange: Bound(200)},
			{MinRange: d("200"), MaxRange: Bound(300)},
			{MinRange: d("300")},
		},
		"byte tiers": {
			{MinRange: d("0"), MaxRange: Bound(1 << 30)},
			{MinRange: d("1073741824"), MaxRange: Bound(1 << 40)},
			{MinRange: d("1099511627776")},
		},
	}
	values := []string{"0", "0.5", "1", "99", "100", "101", "250", "299.999", "300", "1073741824", "5000000000000"}

	for name, intervals := range tables {
		t.Run(name, func(t *testing.T) {
			for _, v := range values {
				sum := decimal.Zero
				for _, interval := range intervals {
					sum = sum.Add(IntervalQuantity(interval.MinRange, d(v), interval.MaxRange))
				}
				assert.Truef(t, d(v).Equal(sum), "value %s partitioned to %s", v, sum)
			}
		})
	}
}

func TestBilledQuantity(t *testing.T) {
	tests := []struct {
		name       string
		quantity   string
		secability string
		expected   string
	}{
		{name: "zero usage", quantity: "0", secability: "100", expected: "0"},
		{name: "negative usage", quantity: "-1", secability: "100", expected: "0"},
		{name: "unit batches", quantity: "42", secability: "1", expected: "42"},
		{name: "partial batch rounds up", quantity: "1", secability: "100", expected: "100"},
		{name: "exact multiple", quantity: "200", secability: "100", expected: "200"},
		{name: "just over a multiple", quantity: "201", secability: "100", expected: "300"},
		{name: "fractional batch", quantity: "0.3", secability: "0.25", expected: "0.5"},
		{name: "non-integer quantity with unit batch", quantity: "1.5", secability: "1", expected: "2"},
		{name: "zero secability means one", quantity: "7", secability: "0", expected: "7"},
		{name: "thirds stay exact", quantity: "6", secability: "3", expected: "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BilledQuantity(d(tt.quantity), d(tt.secability))
			assert.Truef(t, d(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestIntervalContains(t *testing.T) {
	bounded := Interval{MinRange: d("100"), MaxRange: Bound(200)}
	open := Interval{MinRange: d("200")}

	assert.False(t, bounded.Contains(d("99.99")))
	assert.True(t, bounded.Contains(d("100")))
	assert.True(t, bounded.Contains(d("199.99")))
	assert.False(t, bounded.Contains(d("200")))
	assert.True(t, open.Contains(d("200")))
	assert.True(t, open.Contains(d("1e12")))

	span, ok := bounded.Span()
	assert.True(t, ok)
	assert.True(t, d("100").Equal(span))
	_, ok = open.Span()
	assert.False(t, ok)
}

func TestFindInterval(t *testing.T) {
	intervals := []Interval{
		{MinRange: d("0"), MaxRange: Bound(10)},
		{MinRange: d("10")},
	}

	assert.Equal(t, 0, FindInterval(intervals, d("0")))
	assert.Equal(t, 1, FindInterval(intervals, d("10")))
	assert.Equal(t, -1, FindInterval(intervals, d("-1")))
	assert.Equal(t, -1, FindInterval(nil, d("5")))
}

func TestSectionBatchSize(t *testing.T) {
	assert.True(t, d("1").Equal(Section{}.BatchSize()))
	assert.True(t, d("100").Equal(Section{Secability: d("100")}.BatchSize()))
	assert.True(t, Section{}.IsLoading())
	assert.False(t, Section{Intervals: []Interval{}}.IsLoading())
}
