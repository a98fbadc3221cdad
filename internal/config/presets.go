package config

import "sort"

// Presets holds named variations per view. Each entry is applied on top of
// DefaultConfig by GetPreset.
var Presets = map[string]map[string]func(*Config){
	"pulse": {
		"narrow": func(c *Config) { c.Pulse.Spread = 0.02 },
		"wide":   func(c *Config) { c.Pulse.Spread = 0.1 },
		"slow":   func(c *Config) { c.Pulse.Speed = 0.08 },
	},
	"superposition": {
		"constructive": func(c *Config) { c.Superposition.AmplitudeLeft, c.Superposition.AmplitudeRight = 110, 40 },
		"destructive":  func(c *Config) { c.Superposition.AmplitudeLeft, c.Superposition.AmplitudeRight = 80, -80 },
		"equal":        func(c *Config) { c.Superposition.AmplitudeLeft, c.Superposition.AmplitudeRight = 80, 80 },
	},
	"reflection": {
		"sharp": func(c *Config) { c.Reflection.Spread = 0.05 },
		"slow":  func(c *Config) { c.Reflection.Speed = 0.1 },
	},
	"oscillation": {
		"slow": func(c *Config) { c.Oscillation.Frequency = 0.5 },
		"fast": func(c *Config) { c.Oscillation.Frequency = 4 },
	},
	"sine": {
		"long":  func(c *Config) { c.Sine.WaveSpeed = 400 },
		"short": func(c *Config) { c.Sine.WaveSpeed = 60 },
		"fast":  func(c *Config) { c.Sine.Frequency = 6 },
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(view, preset string) *Config {
	viewPresets, ok := Presets[view]
	if !ok {
		return nil
	}
	apply, ok := viewPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.View = view
	apply(cfg)
	return cfg
}

// ApplyPreset applies the named preset to cfg in place.
func ApplyPreset(cfg *Config, view, preset string) bool {
	apply, ok := Presets[view][preset]
	if !ok {
		return false
	}
	apply(cfg)
	return true
}

func ListPresets(view string) []string {
	viewPresets, ok := Presets[view]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(viewPresets))
	for name := range viewPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
