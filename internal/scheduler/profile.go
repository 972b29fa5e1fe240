package scheduler

import "sort"

// Profile is a set of non-negative ranking weights. Presets are the bandit's
// arms; ProfileBalanced is the safe default every blend is anchored to.
type Profile struct {
	Urgency    float64
	Readiness  float64
	Foundation float64
	Influence  float64
}

const (
	ProfileBalanced        = "balanced"
	ProfileUrgencyFirst    = "urgency_first"
	ProfileFoundationFirst = "foundation_first"
	ProfileInfluenceFirst  = "influence_first"
)

// DefaultProfileName names the safe-default preset.
const DefaultProfileName = ProfileBalanced

var presets = map[string]Profile{
	ProfileBalanced:        {Urgency: 1.0, Readiness: 1.0, Foundation: 1.0, Influence: 1.0},
	ProfileUrgencyFirst:    {Urgency: 2.0, Readiness: 0.8, Foundation: 0.6, Influence: 0.6},
	ProfileFoundationFirst: {Urgency: 0.8, Readiness: 1.0, Foundation: 2.0, Influence: 0.8},
	ProfileInfluenceFirst:  {Urgency: 0.8, Readiness: 0.8, Foundation: 0.8, Influence: 2.0},
}

// Preset returns the named preset profile.
func Preset(name string) (Profile, bool) {
	p, ok := presets[name]
	return p, ok
}

// DefaultProfile returns the safe-default preset.
func DefaultProfile() Profile {
	return presets[DefaultProfileName]
}

// PresetNames returns all preset names in deterministic order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BlendProfiles mixes a chosen profile with the safe default. ratio is the
// share of the chosen profile; the remainder comes from the default, bounding
// how far personalization can drift from the known-safe baseline.
func BlendProfiles(chosen, def Profile, ratio float64) Profile {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	inv := 1 - ratio
	return Profile{
		Urgency:    ratio*chosen.Urgency + inv*def.Urgency,
		Readiness:  ratio*chosen.Readiness + inv*def.Readiness,
		Foundation: ratio*chosen.Foundation + inv*def.Foundation,
		Influence:  ratio*chosen.Influence + inv*def.Influence,
	}
}
