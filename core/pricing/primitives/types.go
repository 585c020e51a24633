// Package primitives - Centralized pricing math
// Value types for tiered price tables and the pure functions that rate them.
// The simulator declares intent; all tier arithmetic flows through here.
package primitives

import "github.com/shopspring/decimal"

// Currency is an ISO currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// SectionType identifies a pricing dimension (e.g. "storage", "public-users")
type SectionType string

// String returns the string representation
func (t SectionType) String() string {
	return string(t)
}

// Interval is one tier of a piecewise pricing function.
// The range is half-open: [MinRange, MaxRange).
type Interval struct {
	// MinRange is the inclusive lower bound in the section's base unit
	MinRange decimal.Decimal `json:"min"`

	// MaxRange is the exclusive upper bound (nil = unbounded)
	MaxRange *decimal.Decimal `json:"max,omitempty"`

	// Price is the unit price applicable within this interval
	Price decimal.Decimal `json:"price"`
}

// IsUnbounded reports whether the interval has no upper edge
func (i Interval) IsUnbounded() bool {
	return i.MaxRange == nil
}

// Contains reports whether q falls within [MinRange, MaxRange)
func (i Interval) Contains(q decimal.Decimal) bool {
	if q.LessThan(i.MinRange) {
		return false
	}
	return i.MaxRange == nil || q.LessThan(*i.MaxRange)
}

// Span returns MaxRange - MinRange, or false for an unbounded interval
func (i Interval) Span() (decimal.Decimal, bool) {
	if i.MaxRange == nil {
		return decimal.Zero, false
	}
	return i.MaxRange.Sub(i.MinRange), true
}

// Section is one pricing dimension and its price table
type Section struct {
	// Type is the unique key of the dimension
	Type SectionType `json:"type"`

	// Intervals is the tier table, ascending and contiguous.
	// Nil while pricing data is still loading.
	Intervals []Interval `json:"intervals"`

	// Progressive selects graduated billing instead of flat tier billing
	Progressive bool `json:"progressive,omitempty"`

	// Secability is the batch size consumption is billed in (zero means 1)
	Secability decimal.Decimal `json:"secability"`
}

// IsLoading reports whether the section has no price table yet
func (s Section) IsLoading() bool {
	return s.Intervals == nil
}

// BatchSize returns the effective secability, defaulting to 1
func (s Section) BatchSize() decimal.Decimal {
	if !s.Secability.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return s.Secability
}

// Bound is a convenience for building an interval upper edge
func Bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
