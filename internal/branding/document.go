package branding

// Document is the per-workspace white-label configuration. It is persisted
// as a single JSONB column and replaced wholesale on save; there is no
// field-level persistence. All sections are optional on the wire so older
// partial documents still load — ApplyDefaults fills the gaps once at the
// load boundary.
type Document struct {
	Colors      *Colors      `json:"colors,omitempty"`
	UI          *UI          `json:"ui,omitempty"`
	Login       *Login       `json:"login,omitempty"`
	PWA         *PWA         `json:"pwa,omitempty"`
	SystemPages *SystemPages `json:"system_pages,omitempty"`
	Email       *Email       `json:"email,omitempty"`
	Sounds      *Sounds      `json:"sounds,omitempty"`
	SEO         *SEO         `json:"seo,omitempty"`
	Footer      *Footer      `json:"footer,omitempty"`
}

// ColorSet holds every color token of one palette. Values are HSL triplets
// ("222 14% 12%"), optionally with an alpha suffix ("222 14% 12% / 0.5").
type ColorSet struct {
	Primary          string `json:"primary,omitempty"`
	Background       string `json:"background,omitempty"`
	Sidebar          string `json:"sidebar,omitempty"`
	SidebarSubmenu   string `json:"sidebar_submenu,omitempty"`
	Border           string `json:"border,omitempty"`
	Card             string `json:"card,omitempty"`
	Hover            string `json:"hover,omitempty"`
	HeaderBackground string `json:"header_background,omitempty"`
	HeaderIcon       string `json:"header_icon,omitempty"`
	Success          string `json:"success,omitempty"`
	Warning          string `json:"warning,omitempty"`
	Error            string `json:"error,omitempty"`
	Info             string `json:"info,omitempty"`
	TextPrimary      string `json:"text_primary,omitempty"`
	TextSecondary    string `json:"text_secondary,omitempty"`
	BorderStrong     string `json:"border_strong,omitempty"`
	BorderSubtle     string `json:"border_subtle,omitempty"`
	ScrollbarThumb   string `json:"scrollbar_thumb,omitempty"`
}

// Colors embeds the flat color fields of the currently active profile next
// to the named profile map. The flat fields are what every consumer outside
// the editor reads; Normalize re-projects the selected profile onto them so
// the two can never drift across a save/load cycle.
type Colors struct {
	ColorSet
	SelectedProfile string              `json:"selected_profile,omitempty"`
	Profiles        map[string]ColorSet `json:"profiles,omitempty"`
}

// UI covers shape, typography and surface effects.
type UI struct {
	// Radius is stored in rem; editors work in px with a fixed factor of 16.
	Radius            *float64          `json:"radius,omitempty"`
	FontFamily        string            `json:"font_family,omitempty"`
	HeadingFontFamily string            `json:"heading_font_family,omitempty"`
	GlassBlur         *float64          `json:"glass_blur,omitempty"`
	GlassOpacity      *float64          `json:"glass_opacity,omitempty"`
	FontSizes         map[string]string `json:"font_sizes,omitempty"`
	EffectStyle       string            `json:"effect_style,omitempty"`
	LoaderStyle       string            `json:"loader_style,omitempty"`
}

// Named font size slots carried in UI.FontSizes.
var FontSizeKeys = []string{
	"base", "titles", "card_titles", "menu", "submenu", "small", "stats", "subtitles",
}

// Effect style families.
const (
	EffectFlat = "flat"
	EffectSoft = "soft"
	EffectHard = "hard"
)

type Login struct {
	Mode            string   `json:"mode,omitempty"` // image, color, gradient
	BackgroundImage string   `json:"background_image,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`
	GradientFrom    string   `json:"gradient_from,omitempty"`
	GradientTo      string   `json:"gradient_to,omitempty"`
	OverlayColor    string   `json:"overlay_color,omitempty"`
	OverlayOpacity  *float64 `json:"overlay_opacity,omitempty"`
	Title           string   `json:"title,omitempty"`
	Message         string   `json:"message,omitempty"`
	LogoURL         string   `json:"logo_url,omitempty"`
	Layout          string   `json:"layout,omitempty"` // center, split
}

type PWA struct {
	AppleTouchIcon string `json:"apple_touch_icon,omitempty"`
	Android192     string `json:"android_192,omitempty"`
	Android512     string `json:"android_512,omitempty"`
}

type SystemPages struct {
	Maintenance        *bool  `json:"maintenance,omitempty"`
	MaintenanceMessage string `json:"maintenance_message,omitempty"`
	MaintenanceETA     string `json:"maintenance_eta,omitempty"`
	NotFoundImage      string `json:"not_found_image,omitempty"`
	NotFoundTitle      string `json:"not_found_title,omitempty"`
}

type Email struct {
	HeaderColor string `json:"header_color,omitempty"`
	CTAColor    string `json:"cta_color,omitempty"`
	FooterText  string `json:"footer_text,omitempty"`
}

type Sounds struct {
	Enabled *bool    `json:"enabled,omitempty"`
	Volume  *float64 `json:"volume,omitempty"`
}

type SEO struct {
	// TitleTemplate carries a single %s consumed by every page title.
	TitleTemplate string `json:"title_template,omitempty"`
	Description   string `json:"description,omitempty"`
	OGImage       string `json:"og_image,omitempty"`
}

type Footer struct {
	Copyright      string `json:"copyright,omitempty"`
	ShowLegalLinks *bool  `json:"show_legal_links,omitempty"`
}

// Clone returns a deep copy. Drafts, resets and the store all hand out
// clones so no caller can mutate shared state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{}
	if d.Colors != nil {
		c := Colors{ColorSet: d.Colors.ColorSet, SelectedProfile: d.Colors.SelectedProfile}
		if d.Colors.Profiles != nil {
			c.Profiles = make(map[string]ColorSet, len(d.Colors.Profiles))
			for k, v := range d.Colors.Profiles {
				c.Profiles[k] = v
			}
		}
		out.Colors = &c
	}
	if d.UI != nil {
		u := UI{
			Radius:            cloneFloat(d.UI.Radius),
			FontFamily:        d.UI.FontFamily,
			HeadingFontFamily: d.UI.HeadingFontFamily,
			GlassBlur:         cloneFloat(d.UI.GlassBlur),
			GlassOpacity:      cloneFloat(d.UI.GlassOpacity),
			EffectStyle:       d.UI.EffectStyle,
			LoaderStyle:       d.UI.LoaderStyle,
		}
		if d.UI.FontSizes != nil {
			u.FontSizes = make(map[string]string, len(d.UI.FontSizes))
			for k, v := range d.UI.FontSizes {
				u.FontSizes[k] = v
			}
		}
		out.UI = &u
	}
	if d.Login != nil {
		l := *d.Login
		l.OverlayOpacity = cloneFloat(d.Login.OverlayOpacity)
		out.Login = &l
	}
	if d.PWA != nil {
		p := *d.PWA
		out.PWA = &p
	}
	if d.SystemPages != nil {
		sp := *d.SystemPages
		sp.Maintenance = cloneBool(d.SystemPages.Maintenance)
		out.SystemPages = &sp
	}
	if d.Email != nil {
		e := *d.Email
		out.Email = &e
	}
	if d.Sounds != nil {
		s := Sounds{Enabled: cloneBool(d.Sounds.Enabled), Volume: cloneFloat(d.Sounds.Volume)}
		out.Sounds = &s
	}
	if d.SEO != nil {
		s := *d.SEO
		out.SEO = &s
	}
	if d.Footer != nil {
		f := Footer{Copyright: d.Footer.Copyright, ShowLegalLinks: cloneBool(d.Footer.ShowLegalLinks)}
		out.Footer = &f
	}
	return out
}

// Normalize canonicalizes color strings and projects the selected profile
// onto the flat color fields. It expects a document that already went
// through ApplyDefaults.
func (d *Document) Normalize() {
	if d.Colors != nil {
		if d.Colors.SelectedProfile != "" {
			if set, ok := d.Colors.Profiles[d.Colors.SelectedProfile]; ok {
				d.Colors.ColorSet = set
			}
		}
		d.Colors.ColorSet.normalize()
		for name, set := range d.Colors.Profiles {
			set.normalize()
			d.Colors.Profiles[name] = set
		}
	}
	if d.Login != nil {
		d.Login.BackgroundColor = NormalizeColor(d.Login.BackgroundColor)
		d.Login.GradientFrom = NormalizeColor(d.Login.GradientFrom)
		d.Login.GradientTo = NormalizeColor(d.Login.GradientTo)
		d.Login.OverlayColor = NormalizeColor(d.Login.OverlayColor)
	}
	if d.Email != nil {
		d.Email.HeaderColor = NormalizeColor(d.Email.HeaderColor)
		d.Email.CTAColor = NormalizeColor(d.Email.CTAColor)
	}
}

func (s *ColorSet) normalize() {
	s.Primary = NormalizeColor(s.Primary)
	s.Background = NormalizeColor(s.Background)
	s.Sidebar = NormalizeColor(s.Sidebar)
	s.SidebarSubmenu = NormalizeColor(s.SidebarSubmenu)
	s.Border = NormalizeColor(s.Border)
	s.Card = NormalizeColor(s.Card)
	s.Hover = NormalizeColor(s.Hover)
	s.HeaderBackground = NormalizeColor(s.HeaderBackground)
	s.HeaderIcon = NormalizeColor(s.HeaderIcon)
	s.Success = NormalizeColor(s.Success)
	s.Warning = NormalizeColor(s.Warning)
	s.Error = NormalizeColor(s.Error)
	s.Info = NormalizeColor(s.Info)
	s.TextPrimary = NormalizeColor(s.TextPrimary)
	s.TextSecondary = NormalizeColor(s.TextSecondary)
	s.BorderStrong = NormalizeColor(s.BorderStrong)
	s.BorderSubtle = NormalizeColor(s.BorderSubtle)
	s.ScrollbarThumb = NormalizeColor(s.ScrollbarThumb)
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }
