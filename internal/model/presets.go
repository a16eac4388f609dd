package model

import (
	"sort"
	"strings"
)

// Preset is a named password policy: a generation config plus the entropy a
// compliant password must reach.
type Preset struct {
	Name        string
	Description string
	Config      GenerationConfig
	MinEntropy  float64
}

var presets = map[string]Preset{
	"minimum": {
		Name:        "minimum",
		Description: "8 characters, letters and digits",
		Config:      GenerationConfig{Length: 8, UseLowercase: true, UseUppercase: true, UseDigits: true},
		MinEntropy:  30,
	},
	"standard": {
		Name:        "standard",
		Description: "12 characters, all classes",
		Config:      GenerationConfig{Length: 12, UseLowercase: true, UseUppercase: true, UseDigits: true, UseSymbols: true},
		MinEntropy:  50,
	},
	"high": {
		Name:        "high",
		Description: "16 characters, 2 of each class, no ambiguous characters",
		Config: GenerationConfig{
			Length: 16, UseLowercase: true, UseUppercase: true, UseDigits: true, UseSymbols: true,
			ExcludeAmbiguous: true, MinPerClass: 2,
		},
		MinEntropy: 70,
	},
	"maximum": {
		Name:        "maximum",
		Description: "20 characters, 3 of each class, no ambiguous or similar characters",
		Config: GenerationConfig{
			Length: 20, UseLowercase: true, UseUppercase: true, UseDigits: true, UseSymbols: true,
			ExcludeAmbiguous: true, ExcludeSimilar: true, MinPerClass: 3,
		},
		MinEntropy: 90,
	},
	"military": {
		Name:        "military",
		Description: "24 characters, 4 of each class, no ambiguous or similar characters",
		Config: GenerationConfig{
			Length: 24, UseLowercase: true, UseUppercase: true, UseDigits: true, UseSymbols: true,
			ExcludeAmbiguous: true, ExcludeSimilar: true, MinPerClass: 4,
		},
		MinEntropy: 110,
	},
}

// LookupPreset returns the preset with the given name, case-insensitively.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, InvalidConfigf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// Presets returns all presets ordered by length.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Config.Length < out[j].Config.Length
	})
	return out
}

// PresetNames returns preset names ordered by length.
func PresetNames() []string {
	all := Presets()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}
