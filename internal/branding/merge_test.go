package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsNilDocument(t *testing.T) {
	doc := ApplyDefaults(nil)
	require.NotNil(t, doc)
	assert.Equal(t, DefaultDocument(), doc)
}

func TestApplyDefaultsEmptyDocument(t *testing.T) {
	doc := ApplyDefaults(&Document{})
	assert.Equal(t, DefaultDocument(), doc)
}

func TestApplyDefaultsKeepsStoredValues(t *testing.T) {
	in := &Document{
		Colors: &Colors{ColorSet: ColorSet{Primary: "14 90% 55%"}},
		SEO:    &SEO{TitleTemplate: "%s | Acme"},
	}

	doc := ApplyDefaults(in)

	assert.Equal(t, "14 90% 55%", doc.Colors.Primary)
	assert.Equal(t, "%s | Acme", doc.SEO.TitleTemplate)

	// Everything the document never set comes from the factory table.
	defaults := DefaultDocument()
	assert.Equal(t, defaults.Colors.Background, doc.Colors.Background)
	assert.Equal(t, defaults.SEO.Description, doc.SEO.Description)
	assert.Equal(t, defaults.UI, doc.UI)
	assert.Equal(t, defaults.Login, doc.Login)
	assert.Equal(t, defaults.Footer, doc.Footer)
}

func TestApplyDefaultsDoesNotMutateInput(t *testing.T) {
	in := &Document{
		Colors: &Colors{ColorSet: ColorSet{Primary: "14 90% 55%"}},
	}
	_ = ApplyDefaults(in)

	assert.Equal(t, "14 90% 55%", in.Colors.Primary)
	assert.Empty(t, in.Colors.Background)
	assert.Nil(t, in.UI)
}

func TestApplyDefaultsCompleteness(t *testing.T) {
	// No section pointer of a resolved document may be nil, and no color of
	// the flat set may be empty, regardless of how sparse the input was.
	doc := ApplyDefaults(&Document{Colors: &Colors{}})

	require.NotNil(t, doc.Colors)
	require.NotNil(t, doc.UI)
	require.NotNil(t, doc.Login)
	require.NotNil(t, doc.PWA)
	require.NotNil(t, doc.SystemPages)
	require.NotNil(t, doc.Email)
	require.NotNil(t, doc.Sounds)
	require.NotNil(t, doc.SEO)
	require.NotNil(t, doc.Footer)

	assert.NotEmpty(t, doc.Colors.Primary)
	assert.NotEmpty(t, doc.Colors.ScrollbarThumb)
	require.NotNil(t, doc.UI.Radius)
	for _, key := range FontSizeKeys {
		assert.NotEmpty(t, doc.UI.FontSizes[key], "font size %q", key)
	}
}

func TestApplyDefaultsStoredProfileOverridesBuiltin(t *testing.T) {
	in := &Document{
		Colors: &Colors{
			Profiles: map[string]ColorSet{
				ProfileDark: {Primary: "152 60% 42%"},
			},
		},
	}

	doc := ApplyDefaults(in)

	dark := doc.Colors.Profiles[ProfileDark]
	assert.Equal(t, "152 60% 42%", dark.Primary)
	// Fields the stored profile left empty fall back to the built-in palette.
	assert.Equal(t, DarkPalette().Background, dark.Background)
	// Untouched built-ins stay available.
	assert.Equal(t, WhitePalette(), doc.Colors.Profiles[ProfileWhite])
}

func TestApplyDefaultsCustomProfilePreserved(t *testing.T) {
	in := &Document{
		Colors: &Colors{
			SelectedProfile: "brand",
			Profiles: map[string]ColorSet{
				"brand": {Primary: "300 80% 60%"},
			},
		},
	}

	doc := ApplyDefaults(in)

	assert.Equal(t, "brand", doc.Colors.SelectedProfile)
	assert.Equal(t, "300 80% 60%", doc.Colors.Profiles["brand"].Primary)
}

func TestNormalizeProjectsSelectedProfile(t *testing.T) {
	doc := DefaultDocument()
	doc.Colors.SelectedProfile = ProfileWhite

	doc.Normalize()

	// The flat fields can never drift from the selected profile.
	assert.Equal(t, WhitePalette(), doc.Colors.ColorSet)
}

func TestNormalizeCanonicalizesColors(t *testing.T) {
	doc := DefaultDocument()
	doc.Colors.Primary = "hsl(210, 100%, 50%)"
	doc.Colors.Profiles[ProfileDark] = ColorSet{Primary: "hsla(210, 100%, 50%, 0.5)"}
	doc.Login.OverlayColor = "222, 14%, 5%"

	doc.Normalize()

	// dark is selected, so the flat set is the projected profile.
	assert.Equal(t, "210 100% 50% / 0.5", doc.Colors.Primary)
	assert.Equal(t, "210 100% 50% / 0.5", doc.Colors.Profiles[ProfileDark].Primary)
	assert.Equal(t, "222 14% 5%", doc.Login.OverlayColor)
}

func TestCloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Colors.Primary = "0 0% 0%"
	clone.Colors.Profiles[ProfileDark] = ColorSet{Primary: "0 0% 0%"}
	clone.UI.FontSizes["base"] = "99px"
	*clone.UI.Radius = 9

	assert.Equal(t, DefaultDocument(), doc)
}
