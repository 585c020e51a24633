// Package output provides output formatting interfaces.
// This package produces human and machine-readable estimate breakdowns.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/core/simulator"
	"pricing-simulator/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given estimate
	Render(w io.Writer, estimate *Estimate) error
}

// NewFormatter returns the formatter for format
func NewFormatter(format Format, noColor bool) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return NewCLIFormatter(noColor), nil
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}, nil
	default:
		return nil, errors.NotSupported("output format " + string(format))
	}
}

// Estimate is a point-in-time snapshot of a simulator's prices
type Estimate struct {
	// Catalog is the priced product name
	Catalog string `json:"catalog,omitempty"`

	// Currency is the currency of every amount
	Currency primitives.Currency `json:"currency"`

	// Sections are the per-dimension breakdowns in registration order
	Sections []SectionEstimate `json:"sections"`

	// Total is the grand total
	Total decimal.Decimal `json:"total"`
}

// SectionEstimate is the breakdown of one pricing dimension
type SectionEstimate struct {
	Type        primitives.SectionType `json:"type"`
	Quantity    decimal.Decimal        `json:"quantity"`
	Progressive bool                   `json:"progressive"`
	Secability  decimal.Decimal        `json:"secability"`

	// Loading is set while the section has no price table
	Loading bool `json:"loading,omitempty"`

	// ActiveTier is the index of the tier holding the quantity, or -1
	ActiveTier int `json:"active_tier"`

	Tiers []TierLine      `json:"tiers,omitempty"`
	Total decimal.Decimal `json:"total"`
}

// TierLine is one interval's contribution
type TierLine struct {
	Min       decimal.Decimal  `json:"min"`
	Max       *decimal.Decimal `json:"max,omitempty"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Amount    decimal.Decimal  `json:"amount"`
	Active    bool             `json:"active,omitempty"`
}

// Build snapshots every section of sim
func Build(sim *simulator.Simulator, catalogName string, currency primitives.Currency) (*Estimate, error) {
	estimate := &Estimate{
		Catalog:  catalogName,
		Currency: currency,
		Total:    sim.TotalPrice(),
	}

	for _, t := range sim.Sections() {
		section, err := buildSection(sim, t)
		if err != nil {
			return nil, err
		}
		estimate.Sections = append(estimate.Sections, section)
	}

	return estimate, nil
}

func buildSection(sim *simulator.Simulator, t primitives.SectionType) (SectionEstimate, error) {
	config, err := sim.Section(t)
	if err != nil {
		return SectionEstimate{}, err
	}
	quantity, err := sim.Quantity(t)
	if err != nil {
		return SectionEstimate{}, err
	}
	_, active, err := sim.MaxInterval(t)
	if err != nil {
		return SectionEstimate{}, err
	}
	total, err := sim.SectionPrice(t)
	if err != nil {
		return SectionEstimate{}, err
	}

	section := SectionEstimate{
		Type:        t,
		Quantity:    quantity,
		Progressive: config.Progressive,
		Secability:  config.BatchSize(),
		Loading:     config.IsLoading(),
		ActiveTier:  active,
		Total:       total,
	}

	for i, interval := range config.Intervals {
		amount, err := sim.IntervalPrice(t, i)
		if err != nil {
			return SectionEstimate{}, err
		}
		section.Tiers = append(section.Tiers, TierLine{
			Min:       interval.MinRange,
			Max:       interval.MaxRange,
			UnitPrice: interval.Price,
			Amount:    amount,
			Active:    i == active,
		})
	}

	return section, nil
}
