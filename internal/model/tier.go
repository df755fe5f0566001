// Package model defines domain types for mrrgen tiers, projections, and plots.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by PricingTier.Validate.
var (
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrNonFinitePrice      = errors.New("price must be a finite number")
	ErrNegativeSubscribers = errors.New("customer count must not be negative")
)

// PricingTier is one pricing plan: a unit price and how many subscribers pay it.
type PricingTier struct {
	Name        string
	UnitPrice   float64
	Subscribers int
}

// MonthlyRevenue returns UnitPrice * Subscribers.
func (t PricingTier) MonthlyRevenue() float64 {
	return t.UnitPrice * float64(t.Subscribers)
}

// Validate reports whether the tier is inside the domain the pipeline expects.
// Input layers call this; the aggregator itself trusts its input.
func (t PricingTier) Validate() error {
	switch {
	case math.IsNaN(t.UnitPrice) || math.IsInf(t.UnitPrice, 0):
		return fmt.Errorf("tier %q: %w", t.Name, ErrNonFinitePrice)
	case t.UnitPrice < 0:
		return fmt.Errorf("tier %q: %w", t.Name, ErrNegativePrice)
	case t.Subscribers < 0:
		return fmt.Errorf("tier %q: %w", t.Name, ErrNegativeSubscribers)
	}
	return nil
}

// DefaultTiers is the tier list used when the caller supplies none.
func DefaultTiers() []PricingTier {
	return []PricingTier{{Name: "Basic", UnitPrice: 9.99, Subscribers: 100}}
}
