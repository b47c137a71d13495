package branding

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// PreviewScope is the single container class every draft-derived value is
// nested under. The stylesheet never declares anything outside it, which is
// what keeps the editor's own chrome immune to the draft being edited.
const PreviewScope = ".uy-preview"

// Preview screens and device widths.
const (
	ScreenShell = "shell"
	ScreenLogin = "login"

	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"

	desktopWidthPx = 1100
	mobileWidthPx  = 375
)

// PreviewOptions selects what the preview reproduces. Zero values render
// the desktop dashboard shell.
type PreviewOptions struct {
	Device string
	Screen string
}

type previewData struct {
	Style      template.CSS
	WidthPx    int
	Mobile     bool
	Login      bool
	Doc        *Document
	LoginStyle template.CSS
	Overlay    template.CSS
	Copyright  template.HTML
}

// RenderPreview renders a miniature reproduction of the application shell
// (or the login screen) from the in-progress draft. Everything the draft
// controls is expressed through the scoped token stylesheet, so the output
// can be embedded next to the editor without bleeding into it.
func RenderPreview(d *Document, opts PreviewOptions) (string, error) {
	// Drafts arrive fully merged, but partial documents render fine too:
	// the same fallback table applies.
	d = ApplyDefaults(d)

	width := desktopWidthPx
	if opts.Device == DeviceMobile {
		width = mobileWidthPx
	}

	sheet := ScopedStylesheet(PreviewScope, Tokens(d)) + previewBaseCSS

	data := previewData{
		Style:      template.CSS(sheet),
		WidthPx:    width,
		Mobile:     opts.Device == DeviceMobile,
		Login:      opts.Screen == ScreenLogin,
		Doc:        d,
		LoginStyle: template.CSS(loginBackground(d.Login)),
		Overlay:    template.CSS(loginOverlay(d.Login)),
	}
	if d.Footer != nil {
		// Copyright may embed limited markup (e.g. <strong>); it is operator
		// controlled, not end-user input.
		data.Copyright = template.HTML(d.Footer.Copyright)
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}

func loginBackground(l *Login) string {
	if l == nil {
		return ""
	}
	switch l.Mode {
	case "image":
		if l.BackgroundImage != "" {
			return "background-image: url('" + strings.ReplaceAll(l.BackgroundImage, "'", "%27") + "'); background-size: cover;"
		}
	case "color":
		if l.BackgroundColor != "" {
			return "background: " + CSSColor(l.BackgroundColor) + ";"
		}
	case "gradient":
		if l.GradientFrom != "" && l.GradientTo != "" {
			return "background: linear-gradient(135deg, " + CSSColor(l.GradientFrom) + ", " + CSSColor(l.GradientTo) + ");"
		}
	}
	return "background: var(--background);"
}

func loginOverlay(l *Login) string {
	if l == nil || l.OverlayColor == "" || l.OverlayOpacity == nil {
		return ""
	}
	return "background: " + CSSColor(l.OverlayColor) + "; opacity: " + trimFloat(*l.OverlayOpacity) + ";"
}

// previewBaseCSS is the structural styling of the mock shell. Every rule is
// nested under the preview scope and only reads draft values through the
// token variables above it.
const previewBaseCSS = `
.uy-preview { font-family: var(--font-family); font-size: var(--font-size-base); background: var(--background); color: var(--text-primary); border-radius: var(--radius); overflow: hidden; }
.uy-preview .uy-header { display: flex; align-items: center; justify-content: space-between; padding: 10px 16px; background: var(--header-background); border-bottom: 1px solid var(--border); }
.uy-preview .uy-header .uy-logo { font-family: var(--heading-font-family); font-size: var(--font-size-titles); font-weight: 600; }
.uy-preview .uy-header .uy-icons span { color: var(--header-icon); margin-left: 10px; }
.uy-preview .uy-body { display: flex; min-height: 320px; }
.uy-preview .uy-sidebar { width: 56px; background: var(--sidebar); padding: 8px 0; }
.uy-preview .uy-sidebar .uy-module { width: 32px; height: 32px; margin: 6px auto; border-radius: var(--radius); background: var(--hover); }
.uy-preview .uy-sidebar .uy-module.active { background: var(--primary); }
.uy-preview .uy-submenu { width: 140px; background: var(--sidebar-submenu); padding: 12px; font-size: var(--font-size-submenu); color: var(--text-secondary); }
.uy-preview .uy-submenu .uy-item { padding: 6px 8px; border-radius: var(--radius); }
.uy-preview .uy-submenu .uy-item.active { background: var(--hover); color: var(--text-primary); }
.uy-preview .uy-content { flex: 1; padding: 16px; }
.uy-preview .uy-cards { display: flex; gap: 12px; }
.uy-preview .uy-card { flex: 1; background: var(--card); border: 1px solid var(--border-subtle); border-radius: var(--radius); box-shadow: var(--shadow); padding: 12px; }
.uy-preview .uy-card .uy-card-title { font-size: var(--font-size-card-titles); color: var(--text-secondary); }
.uy-preview .uy-card .uy-stat { font-size: var(--font-size-stats); font-weight: 700; }
.uy-preview .uy-table { margin-top: 16px; width: 100%; border-collapse: collapse; font-size: var(--font-size-small); }
.uy-preview .uy-table th { text-align: left; color: var(--text-secondary); border-bottom: 1px solid var(--border-strong); padding: 6px; }
.uy-preview .uy-table td { border-bottom: 1px solid var(--border-subtle); padding: 6px; }
.uy-preview .uy-badge { color: var(--success); }
.uy-preview .uy-footer { padding: 8px 16px; font-size: var(--font-size-small); color: var(--text-secondary); border-top: 1px solid var(--border-subtle); }
.uy-preview .uy-login { position: relative; display: flex; align-items: center; justify-content: center; min-height: 360px; }
.uy-preview .uy-login .uy-overlay { position: absolute; inset: 0; }
.uy-preview .uy-login .uy-login-card { position: relative; background: var(--card); border-radius: var(--radius); box-shadow: var(--shadow); padding: 24px; width: 260px; text-align: center; }
.uy-preview .uy-login .uy-login-title { font-family: var(--heading-font-family); font-size: var(--font-size-titles); }
.uy-preview .uy-login .uy-login-message { color: var(--text-secondary); font-size: var(--font-size-subtitles); }
.uy-preview .uy-login .uy-field { margin-top: 10px; height: 28px; border: 1px solid var(--border); border-radius: var(--radius); }
.uy-preview .uy-login .uy-submit { margin-top: 12px; height: 30px; border-radius: var(--radius); background: var(--primary); }
.uy-preview.uy-mobile .uy-submenu { display: none; }
.uy-preview.uy-mobile .uy-cards { flex-direction: column; }
`

var previewTemplate = template.Must(template.New("preview").Parse(`<style>{{.Style}}</style>
<div class="uy-preview{{if .Mobile}} uy-mobile{{end}}" style="width: {{.WidthPx}}px">
{{- if .Login}}
  <div class="uy-login" style="{{.LoginStyle}}">
    <div class="uy-overlay" style="{{.Overlay}}"></div>
    <div class="uy-login-card">
      {{- if .Doc.Login.LogoURL}}
      <img src="{{.Doc.Login.LogoURL}}" alt="logo" height="28">
      {{- end}}
      <div class="uy-login-title">{{.Doc.Login.Title}}</div>
      <div class="uy-login-message">{{.Doc.Login.Message}}</div>
      <div class="uy-field"></div>
      <div class="uy-field"></div>
      <div class="uy-submit"></div>
    </div>
  </div>
{{- else}}
  <div class="uy-header">
    <span class="uy-logo">Uniafy</span>
    <span class="uy-icons"><span>&#9881;</span><span>&#128276;</span><span>&#128100;</span></span>
  </div>
  <div class="uy-body">
    <div class="uy-sidebar">
      <div class="uy-module active"></div>
      <div class="uy-module"></div>
      <div class="uy-module"></div>
      <div class="uy-module"></div>
    </div>
    <div class="uy-submenu">
      <div class="uy-item active">Overview</div>
      <div class="uy-item">Campaigns</div>
      <div class="uy-item">Leads</div>
      <div class="uy-item">Reports</div>
    </div>
    <div class="uy-content">
      <div class="uy-cards">
        <div class="uy-card"><div class="uy-card-title">Leads</div><div class="uy-stat">1,284</div></div>
        <div class="uy-card"><div class="uy-card-title">Conversion</div><div class="uy-stat">12.4%</div></div>
        <div class="uy-card"><div class="uy-card-title">Revenue</div><div class="uy-stat">R$ 48k</div></div>
      </div>
      <table class="uy-table">
        <tr><th>Company</th><th>Segment</th><th>Status</th></tr>
        <tr><td>Acme Ltda</td><td>Retail</td><td class="uy-badge">Active</td></tr>
        <tr><td>Borealis SA</td><td>Services</td><td class="uy-badge">Active</td></tr>
        <tr><td>Cumulus ME</td><td>Food</td><td>Trial</td></tr>
      </table>
    </div>
  </div>
  <div class="uy-footer">{{.Copyright}}</div>
{{- end}}
</div>
`))
