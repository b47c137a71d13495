package branding

import (
	"errors"
	"fmt"
)

// SectionID names one configuration domain of the document. Editor routing,
// scoped resets and section updates all dispatch over this type instead of
// free-form strings.
type SectionID string

const (
	SectionColors      SectionID = "colors"
	SectionUI          SectionID = "ui"
	SectionLogin       SectionID = "login"
	SectionPWA         SectionID = "pwa"
	SectionSystemPages SectionID = "system_pages"
	SectionEmail       SectionID = "email"
	SectionSounds      SectionID = "sounds"
	SectionSEO         SectionID = "seo"
	SectionFooter      SectionID = "footer"
	SectionPresets     SectionID = "presets"
	ScopeGlobal        SectionID = "global"
)

// ErrPresetsNotResettable marks the documented no-op: presets are a UI
// affordance with no stored field to restore.
var ErrPresetsNotResettable = errors.New("presets have no stored values to reset")

// ParseSection validates a section identifier from the API.
func ParseSection(s string) (SectionID, error) {
	switch SectionID(s) {
	case SectionColors, SectionUI, SectionLogin, SectionPWA, SectionSystemPages,
		SectionEmail, SectionSounds, SectionSEO, SectionFooter, SectionPresets,
		ScopeGlobal:
		return SectionID(s), nil
	case "typography":
		// Typography fields live in the ui group; accept the editor alias.
		return SectionUI, nil
	default:
		return "", fmt.Errorf("unknown section %q", s)
	}
}

// Reset replaces the scoped section of the draft with factory defaults.
// Global replaces the whole document. The draft is not persisted; callers
// must still save explicitly.
func Reset(d *Document, scope SectionID) error {
	defaults := DefaultDocument()
	switch scope {
	case ScopeGlobal:
		*d = *defaults
	case SectionColors:
		d.Colors = defaults.Colors
	case SectionUI:
		d.UI = defaults.UI
	case SectionLogin:
		d.Login = defaults.Login
	case SectionPWA:
		d.PWA = defaults.PWA
	case SectionSystemPages:
		d.SystemPages = defaults.SystemPages
	case SectionEmail:
		d.Email = defaults.Email
	case SectionSounds:
		d.Sounds = defaults.Sounds
	case SectionSEO:
		d.SEO = defaults.SEO
	case SectionFooter:
		d.Footer = defaults.Footer
	case SectionPresets:
		return ErrPresetsNotResettable
	default:
		return fmt.Errorf("unknown reset scope %q", scope)
	}
	return nil
}
