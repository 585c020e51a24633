// Package catalog - Catalog validation
// Checks the tiling invariant the simulator trusts without verifying.
package catalog

import (
	"fmt"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/internal/errors"
)

// ValidationRule is a per-section validation rule
type ValidationRule func(*primitives.Section) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateTiling,
		validatePrices,
		validateSecability,
	}
}

// Validate checks a catalog against validation rules.
// Sections that are still loading are skipped by the per-section rules.
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var problems []error

	seen := make(map[primitives.SectionType]bool, len(c.Sections))
	for i := range c.Sections {
		section := &c.Sections[i]
		if section.Type == "" {
			problems = append(problems, fmt.Errorf("section %d: empty type", i))
			continue
		}
		if seen[section.Type] {
			problems = append(problems, fmt.Errorf("%s: duplicate section type", section.Type))
		}
		seen[section.Type] = true

		if section.IsLoading() {
			continue
		}
		for _, rule := range rules {
			if err := rule(section); err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", section.Type, err))
			}
		}
	}

	return problems
}

// ValidationError folds the problems Validate reported into one input error.
// It returns nil when there are none.
func (c *Catalog) ValidationError(problems []error) error {
	if len(problems) == 0 {
		return nil
	}

	messages := make([]string, len(problems))
	for i, p := range problems {
		messages[i] = p.Error()
	}
	return errors.Newf(errors.TypeInput, "catalog %q has %d validation problems", c.Name, len(problems)).
		WithContext("problems", messages)
}

// validateTiling ensures intervals tile [0, ∞) in ascending order
func validateTiling(s *primitives.Section) error {
	if len(s.Intervals) == 0 {
		return fmt.Errorf("no intervals")
	}
	if !s.Intervals[0].MinRange.IsZero() {
		return fmt.Errorf("first interval starts at %s, not 0", s.Intervals[0].MinRange)
	}

	last := len(s.Intervals) - 1
	for i, interval := range s.Intervals {
		span, bounded := interval.Span()
		if !bounded {
			if i != last {
				return fmt.Errorf("interval %d is unbounded but is not the last interval", i)
			}
			continue
		}
		if !span.IsPositive() {
			return fmt.Errorf("interval %d is empty: [%s, %s)", i, interval.MinRange, interval.MaxRange)
		}
		if i == last {
			return fmt.Errorf("last interval is bounded at %s", interval.MaxRange)
		}
		if next := s.Intervals[i+1].MinRange; !next.Equal(*interval.MaxRange) {
			return fmt.Errorf("interval %d ends at %s but interval %d starts at %s", i, interval.MaxRange, i+1, next)
		}
	}
	return nil
}

// validatePrices ensures no interval has a negative unit price
func validatePrices(s *primitives.Section) error {
	for i, interval := range s.Intervals {
		if interval.Price.IsNegative() {
			return fmt.Errorf("interval %d has negative price %s", i, interval.Price)
		}
	}
	return nil
}

// validateSecability ensures an explicit batch size is positive
func validateSecability(s *primitives.Section) error {
	if s.Secability.IsNegative() {
		return fmt.Errorf("secability must be positive, got %s", s.Secability)
	}
	return nil
}
