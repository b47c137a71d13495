package branding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewShell(t *testing.T) {
	html, err := RenderPreview(DefaultDocument(), PreviewOptions{})
	require.NoError(t, err)

	assert.Contains(t, html, `class="uy-preview"`)
	assert.Contains(t, html, "uy-header")
	assert.Contains(t, html, "uy-sidebar")
	assert.Contains(t, html, "uy-card")
	assert.Contains(t, html, "width: 1100px")
	assert.NotContains(t, html, `class="uy-login-card"`)
}

func TestRenderPreviewLogin(t *testing.T) {
	doc := DefaultDocument()
	doc.Login.Title = "Acme Portal"
	doc.Login.Message = "Sign in to continue"

	html, err := RenderPreview(doc, PreviewOptions{Screen: ScreenLogin})
	require.NoError(t, err)

	assert.Contains(t, html, `class="uy-login-card"`)
	assert.Contains(t, html, "Acme Portal")
	assert.Contains(t, html, "Sign in to continue")
	assert.NotContains(t, html, `class="uy-header"`)
}

func TestRenderPreviewMobile(t *testing.T) {
	html, err := RenderPreview(DefaultDocument(), PreviewOptions{Device: DeviceMobile})
	require.NoError(t, err)

	assert.Contains(t, html, `class="uy-preview uy-mobile"`)
	assert.Contains(t, html, "width: 375px")
}

func TestRenderPreviewPartialDocument(t *testing.T) {
	// A sparse draft renders with factory fallbacks instead of failing.
	html, err := RenderPreview(&Document{}, PreviewOptions{Screen: ScreenLogin})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome back")
}

func TestRenderPreviewReflectsDraftColors(t *testing.T) {
	doc := DefaultDocument()
	doc.Colors.Primary = "14 90% 55%"

	html, err := RenderPreview(doc, PreviewOptions{})
	require.NoError(t, err)

	assert.Contains(t, html, "--primary: hsl(14 90% 55%);")
}

func TestRenderPreviewIsScoped(t *testing.T) {
	html, err := RenderPreview(DefaultDocument(), PreviewOptions{})
	require.NoError(t, err)

	start := strings.Index(html, "<style>")
	end := strings.Index(html, "</style>")
	require.True(t, start >= 0 && end > start)
	css := html[start+len("<style>") : end]

	// Every selector in the emitted stylesheet lives under the preview
	// scope; nothing can restyle the host page.
	for _, line := range strings.Split(css, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") ||
			trimmed == "}" || strings.HasPrefix(trimmed, PreviewScope) {
			continue
		}
		t.Errorf("unscoped css line: %q", trimmed)
	}
}

func TestLoginBackground(t *testing.T) {
	tests := []struct {
		name  string
		login *Login
		want  string
	}{
		{"nil", nil, ""},
		{
			"gradient",
			&Login{Mode: "gradient", GradientFrom: "222 14% 10%", GradientTo: "222 40% 18%"},
			"background: linear-gradient(135deg, hsl(222 14% 10%), hsl(222 40% 18%));",
		},
		{
			"color",
			&Login{Mode: "color", BackgroundColor: "0 0% 100%"},
			"background: hsl(0 0% 100%);",
		},
		{
			"image",
			&Login{Mode: "image", BackgroundImage: "https://cdn.example.com/bg.png"},
			"background-image: url('https://cdn.example.com/bg.png'); background-size: cover;",
		},
		{
			"image quote escaped",
			&Login{Mode: "image", BackgroundImage: "https://cdn.example.com/bg')*{x:1}.png"},
			"background-image: url('https://cdn.example.com/bg%27)*{x:1}.png'); background-size: cover;",
		},
		{
			"mode without value falls back",
			&Login{Mode: "image"},
			"background: var(--background);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loginBackground(tt.login))
		})
	}
}

func TestLoginOverlay(t *testing.T) {
	assert.Empty(t, loginOverlay(nil))
	assert.Empty(t, loginOverlay(&Login{OverlayColor: "0 0% 0%"}))

	got := loginOverlay(&Login{OverlayColor: "0 0% 0%", OverlayOpacity: floatPtr(0.4)})
	assert.Equal(t, "background: hsl(0 0% 0%); opacity: 0.4;", got)
}
