// Package primitives - Tiered pricing primitives
// Handles flat and graduated tier rating of a consumed quantity.
package primitives

import "github.com/shopspring/decimal"

// IntervalQuantity returns how much of value lies within [minRange, maxRange).
// A nil maxRange never saturates. The result is never negative.
//
// Summed over a contiguous tier table starting at 0, the results reconstruct
// value exactly.
func IntervalQuantity(minRange, value decimal.Decimal, maxRange *decimal.Decimal) decimal.Decimal {
	if value.LessThan(minRange) {
		return decimal.Zero
	}
	if maxRange != nil && value.GreaterThanOrEqual(*maxRange) {
		return decimal.Max(maxRange.Sub(minRange), decimal.Zero)
	}
	return value.Sub(minRange)
}

// BilledQuantity rounds q up to the nearest multiple of secability.
// Zero or negative usage bills nothing; a non-positive secability means 1.
func BilledQuantity(q, secability decimal.Decimal) decimal.Decimal {
	if !q.IsPositive() {
		return decimal.Zero
	}
	if !secability.IsPositive() {
		secability = decimal.NewFromInt(1)
	}

	batches, remainder := q.QuoRem(secability, 0)
	if remainder.IsPositive() {
		batches = batches.Add(decimal.NewFromInt(1))
	}
	return batches.Mul(secability)
}

// FindInterval returns the index of the interval containing q, or -1
func FindInterval(intervals []Interval, q decimal.Decimal) int {
	for i, interval := range intervals {
		if interval.Contains(q) {
			return i
		}
	}
	return -1
}
