package config

import (
	"sort"
	"strings"

	"github.com/theirongolddev/mrrgen/internal/model"
)

// DefaultPresets maps preset names to ready-made tier lists.
var DefaultPresets = map[string][]model.PricingTier{
	"basic": {
		{Name: "Basic", UnitPrice: 9.99, Subscribers: 100},
	},
	"saas": {
		{Name: "Starter", UnitPrice: 19, Subscribers: 240},
		{Name: "Growth", UnitPrice: 49, Subscribers: 85},
		{Name: "Business", UnitPrice: 149, Subscribers: 22},
	},
	"freemium": {
		{Name: "Free", UnitPrice: 0, Subscribers: 5000},
		{Name: "Plus", UnitPrice: 4.99, Subscribers: 310},
		{Name: "Pro", UnitPrice: 12.99, Subscribers: 95},
	},
	"enterprise": {
		{Name: "Team", UnitPrice: 399, Subscribers: 14},
		{Name: "Enterprise", UnitPrice: 2499, Subscribers: 3},
	},
}

// NormalizePresetName lowercases a preset name and turns spaces and
// underscores into dashes. e.g., "Free Mium" -> "free-mium"
func NormalizePresetName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// LookupPreset returns a copy of the named preset's tiers.
// Returns nil and false if the preset is unknown.
func LookupPreset(name string) ([]model.PricingTier, bool) {
	tiers, ok := DefaultPresets[NormalizePresetName(name)]
	if !ok {
		return nil, false
	}
	out := make([]model.PricingTier, len(tiers))
	copy(out, tiers)
	return out, true
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(DefaultPresets))
	for name := range DefaultPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
