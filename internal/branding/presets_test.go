package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsTable(t *testing.T) {
	list := Presets()
	require.NotEmpty(t, list)

	seen := map[string]bool{}
	for _, p := range list {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Colors.Primary, "preset %q", p.ID)
		assert.False(t, seen[p.ID], "duplicate preset id %q", p.ID)
		seen[p.ID] = true
	}
}

func TestApplyPreset(t *testing.T) {
	doc := DefaultDocument()

	err := ApplyPreset(doc, "ocean")
	require.NoError(t, err)

	assert.Equal(t, "187 92% 41%", doc.Colors.Primary)
	assert.Equal(t, "200 50% 8%", doc.Colors.Background)
	// Fields the preset leaves out keep their current values.
	assert.Equal(t, DarkPalette().Success, doc.Colors.Success)
}

func TestApplyPresetIdempotent(t *testing.T) {
	doc := DefaultDocument()
	require.NoError(t, ApplyPreset(doc, "sunset"))
	once := doc.Clone()

	require.NoError(t, ApplyPreset(doc, "sunset"))
	assert.Equal(t, once, doc)
}

func TestApplyPresetTouchesOnlyColors(t *testing.T) {
	doc := DefaultDocument()
	before := doc.Clone()

	require.NoError(t, ApplyPreset(doc, "midnight"))

	assert.Equal(t, before.UI, doc.UI)
	assert.Equal(t, before.Login, doc.Login)
	assert.Equal(t, before.SEO, doc.SEO)
	assert.Equal(t, before.Footer, doc.Footer)
}

func TestApplyPresetWithEffectStyle(t *testing.T) {
	doc := DefaultDocument()

	require.NoError(t, ApplyPreset(doc, "paper"))

	assert.Equal(t, EffectFlat, doc.UI.EffectStyle)
}

func TestApplyPresetUnknown(t *testing.T) {
	doc := DefaultDocument()
	before := doc.Clone()

	err := ApplyPreset(doc, "nope")
	assert.Error(t, err)
	assert.Equal(t, before, doc)
}

func TestApplyPresetEmptyDocument(t *testing.T) {
	doc := &Document{}

	require.NoError(t, ApplyPreset(doc, "forest"))

	require.NotNil(t, doc.Colors)
	assert.Equal(t, "152 60% 42%", doc.Colors.Primary)
}
