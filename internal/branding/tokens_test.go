package branding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensFromDefaults(t *testing.T) {
	tokens := Tokens(DefaultDocument())

	assert.Equal(t, "hsl(210 100% 50%)", tokens["--primary"])
	assert.Equal(t, "hsl(222 14% 10%)", tokens["--background"])
	assert.Equal(t, "0.5rem", tokens["--radius"])
	assert.Equal(t, "Inter, sans-serif", tokens["--font-family"])
	assert.Equal(t, "12px", tokens["--glass-blur"])
	assert.Equal(t, "0.8", tokens["--glass-opacity"])
	assert.Equal(t, "16px", tokens["--font-size-card-titles"])
	assert.Equal(t, "0 2px 8px rgb(0 0 0 / 0.15)", tokens["--shadow"])
}

func TestTokensHeadingFontFallsBack(t *testing.T) {
	doc := DefaultDocument()
	doc.UI.HeadingFontFamily = ""
	tokens := Tokens(doc)
	assert.Equal(t, doc.UI.FontFamily, tokens["--heading-font-family"])

	doc.UI.HeadingFontFamily = "Lora, serif"
	tokens = Tokens(doc)
	assert.Equal(t, "Lora, serif", tokens["--heading-font-family"])
}

func TestTokensShadowPerEffectStyle(t *testing.T) {
	doc := DefaultDocument()

	doc.UI.EffectStyle = EffectFlat
	assert.Equal(t, "none", Tokens(doc)["--shadow"])

	doc.UI.EffectStyle = EffectHard
	assert.Equal(t, "0 8px 24px rgb(0 0 0 / 0.45)", Tokens(doc)["--shadow"])

	doc.UI.EffectStyle = EffectSoft
	assert.Equal(t, "0 2px 8px rgb(0 0 0 / 0.15)", Tokens(doc)["--shadow"])
}

func TestTokensNilDocument(t *testing.T) {
	tokens := Tokens(nil)
	assert.Equal(t, Tokens(DefaultDocument()), tokens)
}

func TestScopedStylesheet(t *testing.T) {
	sheet := ScopedStylesheet(".uy-preview", map[string]string{
		"--primary": "hsl(210 100% 50%)",
		"--radius":  "0.5rem",
	})

	assert.Equal(t, ".uy-preview {\n  --primary: hsl(210 100% 50%);\n  --radius: 0.5rem;\n}\n", sheet)
}

func TestScopedStylesheetDeterministic(t *testing.T) {
	tokens := Tokens(DefaultDocument())
	first := ScopedStylesheet(":root", tokens)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScopedStylesheet(":root", tokens))
	}
}

func TestScopedStylesheetStaysInScope(t *testing.T) {
	sheet := ScopedStylesheet(".uy-preview", Tokens(DefaultDocument()))

	lines := strings.Split(strings.TrimSuffix(sheet, "\n"), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, ".uy-preview {", lines[0])
	assert.Equal(t, "}", lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "  --"), "line %q escapes the scope block", line)
	}
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "0.5", trimFloat(0.5))
	assert.Equal(t, "12", trimFloat(12))
	assert.Equal(t, "0.8", trimFloat(0.8))
	assert.Equal(t, "0.3125", trimFloat(0.3125))
}
