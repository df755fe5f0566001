package config

import "testing"

func TestLookupPreset_NormalizesName(t *testing.T) {
	tiers, ok := LookupPreset("  SaaS ")
	if !ok {
		t.Fatal("LookupPreset returned !ok for \"  SaaS \"")
	}
	if len(tiers) != 3 {
		t.Fatalf("saas preset has %d tiers, want 3", len(tiers))
	}
}

func TestLookupPreset_ReturnsCopy(t *testing.T) {
	tiers, ok := LookupPreset("basic")
	if !ok {
		t.Fatal("basic preset missing")
	}
	tiers[0].Subscribers = 1

	again, _ := LookupPreset("basic")
	if again[0].Subscribers != 100 {
		t.Fatalf("preset mutated through returned slice: Subscribers = %d", again[0].Subscribers)
	}
}

func TestLookupPreset_Unknown(t *testing.T) {
	if _, ok := LookupPreset("nope"); ok {
		t.Fatal("LookupPreset returned ok for unknown preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range PresetNames() {
		tiers, _ := LookupPreset(name)
		for _, tier := range tiers {
			if err := tier.Validate(); err != nil {
				t.Fatalf("preset %s: %v", name, err)
			}
		}
	}
}

func TestNormalizePresetName(t *testing.T) {
	if got := NormalizePresetName("Free_Mium Plan"); got != "free-mium-plan" {
		t.Fatalf("NormalizePresetName = %q", got)
	}
}
