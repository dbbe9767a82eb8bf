package config

import (
	"sort"
)

func whole(w, h int, order OrderConfig) []RegionConfig {
	return []RegionConfig{{Size: [2]int{w, h}, Order: order}}
}

// Presets are common wirings for a single w×h panel.
var Presets = map[string]func(w, h int) []RegionConfig{
	"row_major": func(w, h int) []RegionConfig {
		return whole(w, h, Walk("top_to_bottom", &OrderConfig{Walk: "left_to_right"}))
	},
	"serpentine_rows": func(w, h int) []RegionConfig {
		return whole(w, h, Walk("top_to_bottom",
			Alternate(OrderConfig{Walk: "left_to_right"}, OrderConfig{Walk: "right_to_left"})))
	},
	"column_major": func(w, h int) []RegionConfig {
		return whole(w, h, Walk("left_to_right", &OrderConfig{Walk: "top_to_bottom"}))
	},
	"serpentine_columns": func(w, h int) []RegionConfig {
		return whole(w, h, Walk("left_to_right",
			Alternate(OrderConfig{Walk: "top_to_bottom"}, OrderConfig{Walk: "bottom_to_top"})))
	},
	"reversed": func(w, h int) []RegionConfig {
		return whole(w, h, Walk("bottom_to_top", &OrderConfig{Walk: "right_to_left"}))
	},
}

func GetPreset(name string, w, h int) []RegionConfig {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn(w, h)
}

func HasPreset(name string) bool {
	_, ok := Presets[name]
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for k := range Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
