package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customizedDocument() *Document {
	doc := DefaultDocument()
	doc.Colors.Primary = "14 90% 55%"
	doc.UI.FontFamily = "Georgia, serif"
	doc.Login.Title = "Custom portal"
	doc.SEO.TitleTemplate = "%s | Acme"
	doc.Footer.Copyright = "Acme Corp"
	return doc
}

func TestResetSection(t *testing.T) {
	doc := customizedDocument()
	before := doc.Clone()

	require.NoError(t, Reset(doc, SectionColors))

	assert.Equal(t, DefaultDocument().Colors, doc.Colors)

	// Every other section is untouched.
	assert.Equal(t, before.UI, doc.UI)
	assert.Equal(t, before.Login, doc.Login)
	assert.Equal(t, before.SEO, doc.SEO)
	assert.Equal(t, before.Footer, doc.Footer)
}

func TestResetEachSectionScoped(t *testing.T) {
	sections := []SectionID{
		SectionColors, SectionUI, SectionLogin, SectionPWA, SectionSystemPages,
		SectionEmail, SectionSounds, SectionSEO, SectionFooter,
	}
	for _, section := range sections {
		t.Run(string(section), func(t *testing.T) {
			doc := customizedDocument()
			require.NoError(t, Reset(doc, section))

			// A second reset of the same scope changes nothing.
			after := doc.Clone()
			require.NoError(t, Reset(doc, section))
			assert.Equal(t, after, doc)
		})
	}
}

func TestResetGlobal(t *testing.T) {
	doc := customizedDocument()

	require.NoError(t, Reset(doc, ScopeGlobal))

	assert.Equal(t, DefaultDocument(), doc)
}

func TestResetGlobalIdempotent(t *testing.T) {
	doc := customizedDocument()
	require.NoError(t, Reset(doc, ScopeGlobal))
	require.NoError(t, Reset(doc, ScopeGlobal))
	assert.Equal(t, DefaultDocument(), doc)
}

func TestResetPresetsIsNoOp(t *testing.T) {
	doc := customizedDocument()
	before := doc.Clone()

	err := Reset(doc, SectionPresets)

	assert.ErrorIs(t, err, ErrPresetsNotResettable)
	assert.Equal(t, before, doc)
}

func TestResetUnknownScope(t *testing.T) {
	doc := customizedDocument()
	before := doc.Clone()

	assert.Error(t, Reset(doc, SectionID("bogus")))
	assert.Equal(t, before, doc)
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		input   string
		want    SectionID
		wantErr bool
	}{
		{"colors", SectionColors, false},
		{"ui", SectionUI, false},
		{"typography", SectionUI, false},
		{"login", SectionLogin, false},
		{"pwa", SectionPWA, false},
		{"system_pages", SectionSystemPages, false},
		{"email", SectionEmail, false},
		{"sounds", SectionSounds, false},
		{"seo", SectionSEO, false},
		{"footer", SectionFooter, false},
		{"presets", SectionPresets, false},
		{"global", ScopeGlobal, false},
		{"", "", true},
		{"Colors", "", true},
		{"everything", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSection(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}
