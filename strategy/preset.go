package strategy

import (
	"fmt"
	"sort"
)

var (
	all    = NewElement(0, 1, 2, 3)
	double = NewElement(0, 2)
	twin   = NewElement(0, 1)
	single = NewElement(0)
)

var presets = map[string][]Element{
	// solves any table of size 2
	"two-switch": {
		NewElement(0, 1),
		NewElement(0),
		NewElement(0, 1),
	},
	// solves any table of size 4
	"four-switch": {
		all, double, all, twin, all, double, all,
		single,
		all, double, all, twin, all, double, all,
	},
}

// PresetNames lists the names accepted by Preset
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a new copy of a named, predefined strategy
func Preset(name string) (*Strategy, error) {
	elements, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("invalid strategy: %s", name)
	}
	return New(elements)
}
