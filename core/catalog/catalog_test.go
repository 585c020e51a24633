package catalog

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/internal/errors"
)

func TestLoadHCLAndJSONAgree(t *testing.T) {
	fromHCL, err := Load(filepath.Join("testdata", "object-storage.hcl"))
	require.NoError(t, err)
	fromJSON, err := Load(filepath.Join("testdata", "object-storage.json"))
	require.NoError(t, err)

	for _, c := range []*Catalog{fromHCL, fromJSON} {
		assert.Equal(t, "object-storage", c.Name)
		assert.Equal(t, primitives.CurrencyEUR, c.Currency)
		require.Len(t, c.Sections, 3)
		assert.Empty(t, c.Validate(DefaultValidationRules()))
	}

	require.Equal(t, len(fromHCL.Sections), len(fromJSON.Sections))
	for i := range fromHCL.Sections {
		h, j := fromHCL.Sections[i], fromJSON.Sections[i]
		assert.Equal(t, h.Type, j.Type)
		assert.Equal(t, h.Progressive, j.Progressive)
		assert.True(t, h.Secability.Equal(j.Secability), "secability of %s", h.Type)
		assert.Equal(t, h.IsLoading(), j.IsLoading(), "loading state of %s", h.Type)
		require.Len(t, j.Intervals, len(h.Intervals))
		for k := range h.Intervals {
			assert.True(t, h.Intervals[k].MinRange.Equal(j.Intervals[k].MinRange))
			assert.True(t, h.Intervals[k].Price.Equal(j.Intervals[k].Price))
			assert.Equal(t, h.Intervals[k].IsUnbounded(), j.Intervals[k].IsUnbounded())
			if !h.Intervals[k].IsUnbounded() {
				assert.True(t, h.Intervals[k].MaxRange.Equal(*j.Intervals[k].MaxRange))
			}
		}
	}
}

func TestLoadedCatalogDrivesSimulator(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "object-storage.hcl"))
	require.NoError(t, err)

	users, ok := c.Get("public-users")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.01").Equal(users.Intervals[1].Price))

	sim := c.Simulator()
	require.NoError(t, sim.SetQuantity("storage", 250))
	require.NoError(t, sim.SetQuantity("inbound-traffic", 1e6))

	assert.True(t, decimal.NewFromInt(202).Equal(sim.TotalPrice()), "got %s", sim.TotalPrice())

	assert.Equal(t, Stats{Sections: 3, Loading: 1, Progressive: 1, Intervals: 6}, c.Stats())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "broken.hcl"))
	require.NoError(t, err)

	problems := c.Validate(DefaultValidationRules())
	require.Len(t, problems, 5)

	var messages []string
	for _, p := range problems {
		messages = append(messages, p.Error())
	}
	assert.Contains(t, messages, "storage: first interval starts at 10, not 0")
	assert.Contains(t, messages, "storage: interval 1 has negative price -1")
	assert.Contains(t, messages, "storage: duplicate section type")
	assert.Contains(t, messages, "storage: interval 0 is unbounded but is not the last interval")
	assert.Contains(t, messages, "storage: secability must be positive, got -5")

	err = c.ValidationError(problems)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Len(t, err.(*errors.Error).Context["problems"], 5)

	assert.NoError(t, c.ValidationError(nil))
}

func TestValidateTiling(t *testing.T) {
	bound := primitives.Bound
	zero := decimal.Zero

	tests := []struct {
		name      string
		intervals []primitives.Interval
		wantErr   string
	}{
		{
			name: "contiguous",
			intervals: []primitives.Interval{
				{MinRange: zero, MaxRange: bound(10)},
				{MinRange: decimal.NewFromInt(10)},
			},
		},
		{
			name:      "empty table",
			intervals: []primitives.Interval{},
			wantErr:   "no intervals",
		},
		{
			name: "gap",
			intervals: []primitives.Interval{
				{MinRange: zero, MaxRange: bound(10)},
				{MinRange: decimal.NewFromInt(11)},
			},
			wantErr: "interval 0 ends at 10 but interval 1 starts at 11",
		},
		{
			name: "overlap",
			intervals: []primitives.Interval{
				{MinRange: zero, MaxRange: bound(10)},
				{MinRange: decimal.NewFromInt(5)},
			},
			wantErr: "interval 0 ends at 10 but interval 1 starts at 5",
		},
		{
			name: "empty range",
			intervals: []primitives.Interval{
				{MinRange: zero, MaxRange: bound(0)},
				{MinRange: zero},
			},
			wantErr: "interval 0 is empty: [0, 0)",
		},
		{
			name: "bounded last interval",
			intervals: []primitives.Interval{
				{MinRange: zero, MaxRange: bound(10)},
			},
			wantErr: "last interval is bounded at 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTiling(&primitives.Section{Type: "foo", Intervals: tt.intervals})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.hcl"))
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	_, err = Parse("catalog.yaml", []byte("sections: []"))
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))

	_, err = Parse("catalog.hcl", []byte(`section "storage" { interval { min = 0 } }`))
	assert.True(t, errors.IsType(err, errors.TypeParsing))

	_, err = Parse("catalog.hcl", []byte(`section "storage" {
  interval {
    min   = "zero"
    price = 1
  }
}`))
	assert.True(t, errors.IsType(err, errors.TypeParsing))

	_, err = Parse("catalog.json", []byte(`{"sections": [], "tiers": []}`))
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}
