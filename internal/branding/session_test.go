package branding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) (*Sessions, *Store, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	store := NewStore(repo)
	require.NoError(t, store.Refresh(context.Background(), "ws-acme"))
	return NewSessions(store, repo), store, repo
}

func TestSessionsOpenClonesStoreDocument(t *testing.T) {
	sessions, store, _ := newTestSessions(t)

	draft := sessions.Open("ws-acme")
	draft.Colors.Primary = "14 90% 55%"

	// Draft edits never reach the live document before save.
	assert.NotEqual(t, "14 90% 55%", store.Get("ws-acme").Colors.Primary)
}

func TestSessionsGetWithoutOpen(t *testing.T) {
	sessions, _, _ := newTestSessions(t)

	_, err := sessions.Get("ws-acme")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestSessionsOperationsRequireDraft(t *testing.T) {
	sessions, _, _ := newTestSessions(t)

	assert.ErrorIs(t, sessions.UpdateSection("ws-acme", SectionColors, &Document{}), ErrNoDraft)
	assert.ErrorIs(t, sessions.SwitchProfile("ws-acme", ProfileWhite), ErrNoDraft)
	assert.ErrorIs(t, sessions.ApplyPreset("ws-acme", "ocean"), ErrNoDraft)
	assert.ErrorIs(t, sessions.Reset("ws-acme", SectionColors), ErrNoDraft)
	assert.ErrorIs(t, sessions.Save(context.Background(), "ws-acme"), ErrNoDraft)
}

func TestSessionsUpdateSection(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	sessions.Open("ws-acme")

	payload := &Document{SEO: &SEO{TitleTemplate: "%s | Acme"}}
	require.NoError(t, sessions.UpdateSection("ws-acme", SectionSEO, payload))

	draft, err := sessions.Get("ws-acme")
	require.NoError(t, err)
	assert.Equal(t, "%s | Acme", draft.SEO.TitleTemplate)
	// The submitted section replaces the draft's section wholesale.
	assert.Empty(t, draft.SEO.Description)
}

func TestSessionsUpdateSectionDetachedFromPayload(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	sessions.Open("ws-acme")

	payload := &Document{Footer: &Footer{Copyright: "Acme"}}
	require.NoError(t, sessions.UpdateSection("ws-acme", SectionFooter, payload))
	payload.Footer.Copyright = "mutated"

	draft, err := sessions.Get("ws-acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", draft.Footer.Copyright)
}

func TestSessionsSaveFailureLeavesDraftUntouched(t *testing.T) {
	sessions, store, repo := newTestSessions(t)
	sessions.Open("ws-acme")
	require.NoError(t, sessions.SwitchProfile("ws-acme", ProfileWhite))

	draftBefore, err := sessions.Get("ws-acme")
	require.NoError(t, err)
	snapshot := draftBefore.Clone()

	repo.mu.Lock()
	repo.saveErr = errors.New("connection refused")
	repo.mu.Unlock()

	require.Error(t, sessions.Save(context.Background(), "ws-acme"))

	draftAfter, err := sessions.Get("ws-acme")
	require.NoError(t, err)
	assert.Equal(t, snapshot, draftAfter)

	// The live document never saw the attempt either.
	assert.Equal(t, ProfileDark, store.Get("ws-acme").Colors.SelectedProfile)
}

func TestSessionsSavePublishesToStore(t *testing.T) {
	sessions, store, repo := newTestSessions(t)
	sessions.Open("ws-acme")

	payload := &Document{Colors: &Colors{ColorSet: ColorSet{Primary: "210 100% 40%"}, SelectedProfile: ProfileDark}}
	require.NoError(t, sessions.UpdateSection("ws-acme", SectionColors, payload))

	require.NoError(t, sessions.Save(context.Background(), "ws-acme"))

	// Whole-document replace hit the repository exactly once.
	assert.Equal(t, 1, repo.saveHits)

	// Every consumer of the store reads the new value immediately.
	live := store.Get("ws-acme")
	assert.Equal(t, "210 100% 40%", live.Colors.Primary)
	assert.Equal(t, "210 100% 40%", live.Colors.Profiles[ProfileDark].Primary)
}

func TestSessionsSaveSnapshotsActiveProfile(t *testing.T) {
	sessions, _, repo := newTestSessions(t)
	draft := sessions.Open("ws-acme")
	draft.Colors.Primary = "14 90% 55%"

	require.NoError(t, sessions.Save(context.Background(), "ws-acme"))

	repo.mu.Lock()
	persisted := repo.docs["ws-acme"].Clone()
	repo.mu.Unlock()

	// Flat set and selected profile entry are in sync in the persisted
	// document.
	assert.Equal(t, "14 90% 55%", persisted.Colors.Primary)
	assert.Equal(t, "14 90% 55%", persisted.Colors.Profiles[ProfileDark].Primary)
}

func TestSessionsDiscard(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	draft := sessions.Open("ws-acme")
	draft.Footer.Copyright = "unsaved"

	sessions.Discard("ws-acme")

	_, err := sessions.Get("ws-acme")
	assert.ErrorIs(t, err, ErrNoDraft)
	assert.NotEqual(t, "unsaved", store.Get("ws-acme").Footer.Copyright)
}

func TestSessionsOpenReplacesPreviousDraft(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	first := sessions.Open("ws-acme")
	first.Footer.Copyright = "abandoned edit"

	second := sessions.Open("ws-acme")

	assert.NotEqual(t, "abandoned edit", second.Footer.Copyright)
}

func TestSessionsEndToEnd(t *testing.T) {
	// Operator journey: open the editor, restyle colors via preset and a
	// manual edit, adjust typography, save, and verify every consumer-facing
	// artifact reflects the change.
	sessions, store, _ := newTestSessions(t)
	sessions.Open("ws-acme")

	require.NoError(t, sessions.ApplyPreset("ws-acme", "ocean"))

	draft, err := sessions.Get("ws-acme")
	require.NoError(t, err)
	draft.Colors.Primary = "210 100% 50%"
	rem := RadiusToRem(12)
	draft.UI.Radius = &rem

	require.NoError(t, sessions.Save(context.Background(), "ws-acme"))

	live := store.Get("ws-acme")
	assert.Equal(t, "210 100% 50%", live.Colors.Primary)
	assert.Equal(t, "200 50% 8%", live.Colors.Background)

	tokens := Tokens(live)
	assert.Equal(t, "hsl(210 100% 50%)", tokens["--primary"])
	assert.Equal(t, "0.75rem", tokens["--radius"])

	html, err := RenderPreview(live, PreviewOptions{})
	require.NoError(t, err)
	assert.Contains(t, html, "--primary: hsl(210 100% 50%);")
}
