package branding

import (
	"fmt"
	"sort"
	"strings"
)

// Tokens flattens a resolved document into the CSS custom-property map the
// application shell and the live preview both consume. It is a pure
// function of the document; scoping the tokens to a container is the
// renderer's job.
func Tokens(d *Document) map[string]string {
	t := make(map[string]string, 40)
	if d == nil {
		d = DefaultDocument()
	}

	if c := d.Colors; c != nil {
		t["--primary"] = CSSColor(c.Primary)
		t["--background"] = CSSColor(c.Background)
		t["--sidebar"] = CSSColor(c.Sidebar)
		t["--sidebar-submenu"] = CSSColor(c.SidebarSubmenu)
		t["--border"] = CSSColor(c.Border)
		t["--card"] = CSSColor(c.Card)
		t["--hover"] = CSSColor(c.Hover)
		t["--header-background"] = CSSColor(c.HeaderBackground)
		t["--header-icon"] = CSSColor(c.HeaderIcon)
		t["--success"] = CSSColor(c.Success)
		t["--warning"] = CSSColor(c.Warning)
		t["--error"] = CSSColor(c.Error)
		t["--info"] = CSSColor(c.Info)
		t["--text-primary"] = CSSColor(c.TextPrimary)
		t["--text-secondary"] = CSSColor(c.TextSecondary)
		t["--border-strong"] = CSSColor(c.BorderStrong)
		t["--border-subtle"] = CSSColor(c.BorderSubtle)
		t["--scrollbar-thumb"] = CSSColor(c.ScrollbarThumb)
	}

	if u := d.UI; u != nil {
		if u.Radius != nil {
			t["--radius"] = trimFloat(*u.Radius) + "rem"
		}
		if u.FontFamily != "" {
			t["--font-family"] = u.FontFamily
		}
		heading := u.HeadingFontFamily
		if heading == "" {
			heading = u.FontFamily
		}
		if heading != "" {
			t["--heading-font-family"] = heading
		}
		if u.GlassBlur != nil {
			t["--glass-blur"] = trimFloat(*u.GlassBlur) + "px"
		}
		if u.GlassOpacity != nil {
			t["--glass-opacity"] = trimFloat(*u.GlassOpacity)
		}
		for key, size := range u.FontSizes {
			t["--font-size-"+strings.ReplaceAll(key, "_", "-")] = size
		}
		t["--shadow"] = shadowFor(u.EffectStyle)
	}

	return t
}

func shadowFor(style string) string {
	switch style {
	case EffectFlat:
		return "none"
	case EffectHard:
		return "0 8px 24px rgb(0 0 0 / 0.45)"
	default: // soft
		return "0 2px 8px rgb(0 0 0 / 0.15)"
	}
}

// ScopedStylesheet renders the token map as a declaration block under a
// single scope selector. Nothing escapes the scope: the editor chrome and
// the rest of the host application keep their own variables.
func ScopedStylesheet(scope string, tokens map[string]string) string {
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(scope)
	b.WriteString(" {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, tokens[k])
	}
	b.WriteString("}\n")
	return b.String()
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
