package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/mrrgen/internal/model"
)

// ErrNoTiers is returned when a tiers file defines no [[tier]] entries.
var ErrNoTiers = errors.New("no tiers defined")

type tierFile struct {
	Tiers []tierEntry `toml:"tier"`
}

type tierEntry struct {
	Name      string  `toml:"name"`
	Price     float64 `toml:"price"`
	Customers int     `toml:"customers"`
}

// LoadTiers reads a TOML file of [[tier]] tables:
//
//	[[tier]]
//	name = "Basic"
//	price = 9.99
//	customers = 100
func LoadTiers(path string) ([]model.PricingTier, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("reading tiers file: %w", err)
	}
	return ParseTiers(data)
}

// ParseTiers decodes and validates a tiers document.
func ParseTiers(data []byte) ([]model.PricingTier, error) {
	var f tierFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tiers: %w", err)
	}
	if len(f.Tiers) == 0 {
		return nil, ErrNoTiers
	}

	tiers := make([]model.PricingTier, 0, len(f.Tiers))
	for i, e := range f.Tiers {
		t := model.PricingTier{Name: e.Name, UnitPrice: e.Price, Subscribers: e.Customers}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("tier %d: %w", i+1, err)
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}

// ParseTierFlag parses "name:price:customers", e.g. "Basic:9.99:100".
// The name may itself contain colons; price and customers are the last two fields.
func ParseTierFlag(s string) (model.PricingTier, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return model.PricingTier{}, fmt.Errorf("tier %q: want name:price:customers", s)
	}
	n := len(parts)
	name := strings.TrimSpace(strings.Join(parts[:n-2], ":"))

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[n-2]), 64)
	if err != nil {
		return model.PricingTier{}, fmt.Errorf("tier %q price: %w", s, err)
	}
	customers, err := strconv.Atoi(strings.TrimSpace(parts[n-1]))
	if err != nil {
		return model.PricingTier{}, fmt.Errorf("tier %q customers: %w", s, err)
	}

	t := model.PricingTier{Name: name, UnitPrice: price, Subscribers: customers}
	if err := t.Validate(); err != nil {
		return model.PricingTier{}, err
	}
	return t, nil
}
