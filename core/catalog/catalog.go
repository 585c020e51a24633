// Package catalog - Authoritative price table catalog
// Defines the ordered list of pricing sections a simulator is built from.
// This is the source of truth for tier tables.
package catalog

import (
	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/core/simulator"
)

// Catalog is a named, ordered set of pricing sections
type Catalog struct {
	// Name identifies the priced product (e.g. "object-storage")
	Name string `json:"name,omitempty"`

	// Currency is the currency every price is expressed in
	Currency primitives.Currency `json:"currency,omitempty"`

	// Sections are the pricing dimensions in display order
	Sections []primitives.Section `json:"sections"`
}

// Get returns the section registered under t
func (c *Catalog) Get(t primitives.SectionType) (primitives.Section, bool) {
	for _, section := range c.Sections {
		if section.Type == t {
			return section, true
		}
	}
	return primitives.Section{}, false
}

// Simulator builds a simulator over the catalog's sections
func (c *Catalog) Simulator(opts ...simulator.Option) *simulator.Simulator {
	return simulator.New(c.Sections, opts...)
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	var stats Stats
	for _, section := range c.Sections {
		stats.Sections++
		if section.IsLoading() {
			stats.Loading++
			continue
		}
		if section.Progressive {
			stats.Progressive++
		}
		stats.Intervals += len(section.Intervals)
	}
	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Sections    int
	Loading     int
	Progressive int
	Intervals   int
}
