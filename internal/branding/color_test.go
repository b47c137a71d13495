package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"raw triplet", "210 100% 50%", "210 100% 50%"},
		{"extra whitespace", "  210   100%  50% ", "210 100% 50%"},
		{"comma separated", "210, 100%, 50%", "210 100% 50%"},
		{"hsl wrapped", "hsl(210 100% 50%)", "210 100% 50%"},
		{"hsl wrapped commas", "hsl(210, 100%, 50%)", "210 100% 50%"},
		{"hsla wrapped", "hsla(210, 100%, 50%, 0.5)", "210 100% 50% / 0.5"},
		{"slash alpha", "210 100% 50% / 0.5", "210 100% 50% / 0.5"},
		{"slash alpha no spaces", "210 100% 50%/0.5", "210 100% 50% / 0.5"},
		{"trailing alpha without slash", "210 100% 50% 0.5", "210 100% 50% / 0.5"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"unrecognized passes through", "#ff0000", "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeColor(tt.input))
		})
	}
}

func TestNormalizeColorIdempotent(t *testing.T) {
	inputs := []string{
		"hsla(210, 100%, 50%, 0.5)",
		"210, 100%, 50%",
		"210 100% 50%",
	}
	for _, in := range inputs {
		once := NormalizeColor(in)
		assert.Equal(t, once, NormalizeColor(once), "input %q", in)
	}
}

func TestCSSColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"210 100% 50%", "hsl(210 100% 50%)"},
		{"210 100% 50% / 0.5", "hsl(210 100% 50% / 0.5)"},
		{"hsl(210 100% 50%)", "hsl(210 100% 50%)"},
		{"rgb(0 0 0)", "rgb(0 0 0)"},
		{"#112233", "#112233"},
		{"var(--primary)", "var(--primary)"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CSSColor(tt.input), "input %q", tt.input)
	}
}
