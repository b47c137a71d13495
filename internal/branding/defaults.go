package branding

// Built-in profile names shipped with every workspace.
const (
	ProfileDark  = "dark"
	ProfileWhite = "white"
)

// DarkPalette is the factory dark/industrial color set.
func DarkPalette() ColorSet {
	return ColorSet{
		Primary:          "210 100% 50%",
		Background:       "222 14% 10%",
		Sidebar:          "222 14% 13%",
		SidebarSubmenu:   "222 14% 16%",
		Border:           "222 10% 22%",
		Card:             "222 14% 14%",
		Hover:            "222 14% 20%",
		HeaderBackground: "222 14% 12%",
		HeaderIcon:       "210 12% 80%",
		Success:          "142 70% 45%",
		Warning:          "38 92% 50%",
		Error:            "0 72% 51%",
		Info:             "199 89% 48%",
		TextPrimary:      "210 17% 95%",
		TextSecondary:    "215 12% 65%",
		BorderStrong:     "222 10% 30%",
		BorderSubtle:     "222 10% 18%",
		ScrollbarThumb:   "222 10% 28%",
	}
}

// WhitePalette is the factory light color set.
func WhitePalette() ColorSet {
	return ColorSet{
		Primary:          "210 100% 45%",
		Background:       "0 0% 100%",
		Sidebar:          "210 20% 98%",
		SidebarSubmenu:   "210 20% 95%",
		Border:           "214 15% 88%",
		Card:             "0 0% 100%",
		Hover:            "210 20% 94%",
		HeaderBackground: "0 0% 100%",
		HeaderIcon:       "215 16% 35%",
		Success:          "142 70% 40%",
		Warning:          "32 95% 44%",
		Error:            "0 72% 45%",
		Info:             "199 89% 42%",
		TextPrimary:      "222 25% 12%",
		TextSecondary:    "215 12% 40%",
		BorderStrong:     "214 15% 75%",
		BorderSubtle:     "214 20% 93%",
		ScrollbarThumb:   "214 15% 80%",
	}
}

// DefaultDocument returns the complete factory branding table. Every field
// a consumer can read has a value here; the merge pass guarantees no read
// path ever sees an absent field.
func DefaultDocument() *Document {
	return &Document{
		Colors: &Colors{
			ColorSet:        DarkPalette(),
			SelectedProfile: ProfileDark,
			Profiles: map[string]ColorSet{
				ProfileDark:  DarkPalette(),
				ProfileWhite: WhitePalette(),
			},
		},
		UI: &UI{
			Radius:            floatPtr(0.5), // 8px
			FontFamily:        "Inter, sans-serif",
			HeadingFontFamily: "",
			GlassBlur:         floatPtr(12),
			GlassOpacity:      floatPtr(0.8),
			FontSizes: map[string]string{
				"base":        "14px",
				"titles":      "22px",
				"card_titles": "16px",
				"menu":        "14px",
				"submenu":     "13px",
				"small":       "12px",
				"stats":       "24px",
				"subtitles":   "15px",
			},
			EffectStyle: EffectSoft,
			LoaderStyle: "spinner",
		},
		Login: &Login{
			Mode:           "gradient",
			GradientFrom:   "222 14% 10%",
			GradientTo:     "222 40% 18%",
			OverlayColor:   "222 14% 5%",
			OverlayOpacity: floatPtr(0.4),
			Title:          "Welcome back",
			Message:        "Sign in to your workspace",
			Layout:         "center",
		},
		PWA: &PWA{},
		SystemPages: &SystemPages{
			Maintenance:        boolPtr(false),
			MaintenanceMessage: "We are performing scheduled maintenance.",
			MaintenanceETA:     "",
			NotFoundTitle:      "Page not found",
		},
		Email: &Email{
			HeaderColor: "222 14% 12%",
			CTAColor:    "210 100% 50%",
			FooterText:  "Sent by Uniafy",
		},
		Sounds: &Sounds{
			Enabled: boolPtr(true),
			Volume:  floatPtr(0.5),
		},
		SEO: &SEO{
			TitleTemplate: "%s | Uniafy",
			Description:   "Marketing agency console",
		},
		Footer: &Footer{
			Copyright:      "© Uniafy. All rights reserved.",
			ShowLegalLinks: boolPtr(true),
		},
	}
}
