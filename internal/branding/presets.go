package branding

import "fmt"

// Preset is a canned bulk assignment of color values. Applying one
// overwrites the matching draft color fields and nothing else; presets are
// a UI affordance, not a stored document field.
type Preset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors ColorSet `json:"colors"`
	// EffectStyle is set only by presets that explicitly restyle surfaces.
	EffectStyle string `json:"effect_style,omitempty"`
}

var presets = []Preset{
	{
		ID:   "midnight",
		Name: "Midnight",
		Colors: ColorSet{
			Primary:          "217 91% 60%",
			Background:       "222 47% 7%",
			Sidebar:          "222 47% 10%",
			SidebarSubmenu:   "222 47% 13%",
			Border:           "222 30% 20%",
			Card:             "222 47% 11%",
			Hover:            "222 40% 16%",
			HeaderBackground: "222 47% 9%",
			HeaderIcon:       "217 30% 75%",
			TextPrimary:      "210 40% 96%",
			TextSecondary:    "215 20% 65%",
			ScrollbarThumb:   "222 30% 25%",
		},
	},
	{
		ID:   "ocean",
		Name: "Ocean",
		Colors: ColorSet{
			Primary:          "187 92% 41%",
			Background:       "200 50% 8%",
			Sidebar:          "200 45% 11%",
			SidebarSubmenu:   "200 45% 14%",
			Border:           "197 30% 22%",
			Card:             "200 45% 12%",
			Hover:            "198 40% 17%",
			HeaderBackground: "200 48% 10%",
			HeaderIcon:       "187 40% 70%",
			TextPrimary:      "190 40% 95%",
			TextSecondary:    "195 20% 62%",
			ScrollbarThumb:   "197 30% 26%",
		},
	},
	{
		ID:   "sunset",
		Name: "Sunset",
		Colors: ColorSet{
			Primary:          "14 90% 55%",
			Background:       "20 25% 9%",
			Sidebar:          "18 22% 12%",
			SidebarSubmenu:   "18 22% 15%",
			Border:           "18 15% 22%",
			Card:             "18 22% 13%",
			Hover:            "16 20% 18%",
			HeaderBackground: "20 24% 11%",
			HeaderIcon:       "20 60% 75%",
			TextPrimary:      "24 40% 95%",
			TextSecondary:    "20 15% 62%",
			ScrollbarThumb:   "18 15% 26%",
		},
	},
	{
		ID:   "forest",
		Name: "Forest",
		Colors: ColorSet{
			Primary:          "152 60% 42%",
			Background:       "160 20% 8%",
			Sidebar:          "158 18% 11%",
			SidebarSubmenu:   "158 18% 14%",
			Border:           "156 12% 22%",
			Card:             "158 18% 12%",
			Hover:            "156 16% 17%",
			HeaderBackground: "160 20% 10%",
			HeaderIcon:       "152 30% 70%",
			TextPrimary:      "150 30% 95%",
			TextSecondary:    "155 12% 60%",
			ScrollbarThumb:   "156 12% 26%",
		},
	},
	{
		ID:   "paper",
		Name: "Paper",
		Colors: ColorSet{
			Primary:          "222 60% 40%",
			Background:       "40 30% 98%",
			Sidebar:          "40 25% 95%",
			SidebarSubmenu:   "40 25% 92%",
			Border:           "40 15% 85%",
			Card:             "0 0% 100%",
			Hover:            "40 20% 92%",
			HeaderBackground: "40 30% 97%",
			HeaderIcon:       "222 20% 35%",
			TextPrimary:      "222 30% 15%",
			TextSecondary:    "222 12% 42%",
			ScrollbarThumb:   "40 15% 78%",
		},
		EffectStyle: EffectFlat,
	},
}

// Presets returns the canned preset table in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ApplyPreset bulk-overwrites the draft's flat color fields from the preset
// table. Only fields the preset defines are touched, so applying the same
// preset twice yields the same draft state.
func ApplyPreset(d *Document, id string) error {
	var preset *Preset
	for i := range presets {
		if presets[i].ID == id {
			preset = &presets[i]
			break
		}
	}
	if preset == nil {
		return fmt.Errorf("unknown preset %q", id)
	}
	if d.Colors == nil {
		d.Colors = &Colors{}
	}
	mergeColorSet(&d.Colors.ColorSet, &preset.Colors)
	if preset.EffectStyle != "" {
		if d.UI == nil {
			d.UI = &UI{}
		}
		d.UI.EffectStyle = preset.EffectStyle
	}
	return nil
}
