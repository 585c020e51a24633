// Package simulator estimates consumption-based prices for metered resources.
//
// A Simulator holds a fixed set of pricing sections, each with a tier table,
// a billing mode and a batch size. Callers update one quantity per section
// and read back interval, section and total prices. Every accessor recomputes
// from current state; nothing is cached.
//
// A Simulator is not safe for concurrent mutation.
package simulator

import (
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/internal/errors"
	"pricing-simulator/internal/logging"
)

// sectionState is the per-section mutable state
type sectionState struct {
	config   primitives.Section
	quantity decimal.Decimal
}

// Simulator rates quantities against per-section tier tables
type Simulator struct {
	sections map[primitives.SectionType]*sectionState
	order    []primitives.SectionType
	logger   *zap.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLogger sets the logger used for ignored input
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New registers every section with a zero quantity.
// Interval tables are trusted as given: they are neither sorted nor validated.
// A repeated type replaces the earlier configuration in its original position.
func New(sections []primitives.Section, opts ...Option) *Simulator {
	s := &Simulator{
		sections: make(map[primitives.SectionType]*sectionState, len(sections)),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, section := range sections {
		if _, exists := s.sections[section.Type]; !exists {
			s.order = append(s.order, section.Type)
		}
		s.sections[section.Type] = &sectionState{
			config:   section,
			quantity: decimal.Zero,
		}
	}

	return s
}

// Sections returns the registered section types in registration order
func (s *Simulator) Sections() []primitives.SectionType {
	out := make([]primitives.SectionType, len(s.order))
	copy(out, s.order)
	return out
}

// Section returns the configuration registered for t
func (s *Simulator) Section(t primitives.SectionType) (primitives.Section, error) {
	state, err := s.lookup(t)
	if err != nil {
		return primitives.Section{}, err
	}
	return state.config, nil
}

// Quantity returns the current quantity of a section
func (s *Simulator) Quantity(t primitives.SectionType) (decimal.Decimal, error) {
	state, err := s.lookup(t)
	if err != nil {
		return decimal.Zero, err
	}
	return state.quantity, nil
}

// SetQuantity sets the quantity of a section.
// NaN and infinite values are ignored and the previous quantity is kept.
// Negative quantities are accepted and rate to zero.
func (s *Simulator) SetQuantity(t primitives.SectionType, quantity float64) error {
	state, err := s.lookup(t)
	if err != nil {
		return err
	}

	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		s.logger.Debug("ignoring non-numeric quantity",
			logging.Section(t.String()),
			zap.Float64("quantity", quantity),
			logging.Decimal("kept", state.quantity))
		return nil
	}

	state.quantity = decimal.NewFromFloat(quantity)
	return nil
}

// SetQuantityDecimal sets the quantity of a section from an exact decimal
func (s *Simulator) SetQuantityDecimal(t primitives.SectionType, quantity decimal.Decimal) error {
	state, err := s.lookup(t)
	if err != nil {
		return err
	}
	state.quantity = quantity
	return nil
}

// MaxInterval returns the interval containing the section's current quantity
// and its index. It returns nil and -1 while intervals are loading or when no
// interval matches.
func (s *Simulator) MaxInterval(t primitives.SectionType) (*primitives.Interval, int, error) {
	state, err := s.lookup(t)
	if err != nil {
		return nil, -1, err
	}

	index := state.maxIndex()
	if index < 0 {
		return nil, -1, nil
	}
	interval := state.config.Intervals[index]
	return &interval, index, nil
}

// IntervalPrice returns the contribution of one interval to the section price.
//
// Flat sections bill their whole quantity, rounded up to the batch size, at
// the price of the interval containing it; every other interval is zero.
//
// Progressive sections bill each interval the quantity has reached for the
// units it holds. Consumed units are counted inclusively: passed intervals
// bill their full span and the containing interval bills quantity-min+1.
// Intervals above the quantity bill nothing. Each interval's units are
// rounded up to the batch size independently.
//
// Loading sections and indexes outside the table yield zero.
func (s *Simulator) IntervalPrice(t primitives.SectionType, index int) (decimal.Decimal, error) {
	state, err := s.lookup(t)
	if err != nil {
		return decimal.Zero, err
	}
	return state.intervalPrice(index), nil
}

// SectionPrice returns the sum of every interval price of a section
func (s *Simulator) SectionPrice(t primitives.SectionType) (decimal.Decimal, error) {
	state, err := s.lookup(t)
	if err != nil {
		return decimal.Zero, err
	}
	return state.sectionPrice(), nil
}

// TotalPrice returns the sum of every section price
func (s *Simulator) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.order {
		total = total.Add(s.sections[t].sectionPrice())
	}
	return total
}

func (s *Simulator) lookup(t primitives.SectionType) (*sectionState, error) {
	state, ok := s.sections[t]
	if !ok {
		return nil, errors.NotFound("section", t.String())
	}
	return state, nil
}

func (st *sectionState) maxIndex() int {
	if st.config.IsLoading() {
		return -1
	}
	return primitives.FindInterval(st.config.Intervals, st.quantity)
}

func (st *sectionState) intervalPrice(index int) decimal.Decimal {
	intervals := st.config.Intervals
	if index < 0 || index >= len(intervals) {
		return decimal.Zero
	}
	interval := intervals[index]
	batch := st.config.BatchSize()

	if !st.config.Progressive {
		if index != st.maxIndex() {
			return decimal.Zero
		}
		return interval.Price.Mul(primitives.BilledQuantity(st.quantity, batch))
	}

	if !st.quantity.IsPositive() || st.quantity.LessThan(interval.MinRange) {
		return decimal.Zero
	}
	through := st.quantity.Add(decimal.NewFromInt(1))
	units := primitives.IntervalQuantity(interval.MinRange, through, interval.MaxRange)
	return interval.Price.Mul(primitives.BilledQuantity(units, batch))
}

func (st *sectionState) sectionPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range st.config.Intervals {
		total = total.Add(st.intervalPrice(i))
	}
	return total
}
