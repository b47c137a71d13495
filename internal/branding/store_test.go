package branding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository used across store and session
// tests.
type fakeRepository struct {
	mu       sync.Mutex
	docs     map[string]*Document
	loadErr  error
	saveErr  error
	saveHits int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{docs: make(map[string]*Document)}
}

func (r *fakeRepository) Load(_ context.Context, workspaceID string) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if doc, ok := r.docs[workspaceID]; ok {
		return doc.Clone(), nil
	}
	return &Document{}, nil
}

func (r *fakeRepository) Save(_ context.Context, workspaceID string, doc *Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveHits++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.docs[workspaceID] = doc.Clone()
	return nil
}

func TestStoreGetUnknownWorkspaceReturnsDefaults(t *testing.T) {
	store := NewStore(newFakeRepository())
	assert.Equal(t, DefaultDocument(), store.Get("ws-acme"))
}

func TestStoreRefreshCachesResolvedDocument(t *testing.T) {
	repo := newFakeRepository()
	repo.docs["ws-acme"] = &Document{
		Colors: &Colors{ColorSet: ColorSet{Primary: "hsl(14, 90%, 55%)"}},
	}
	store := NewStore(repo)

	require.NoError(t, store.Refresh(context.Background(), "ws-acme"))

	doc := store.Get("ws-acme")
	// Merged, normalized, and complete.
	assert.Equal(t, "14 90% 55%", doc.Colors.Profiles[ProfileDark].Primary)
	assert.NotNil(t, doc.UI)
	assert.NotEmpty(t, doc.Colors.Background)
}

func TestStoreRefreshFailureKeepsLastGood(t *testing.T) {
	repo := newFakeRepository()
	repo.docs["ws-acme"] = &Document{
		SEO: &SEO{TitleTemplate: "%s | Acme"},
	}
	store := NewStore(repo)
	require.NoError(t, store.Refresh(context.Background(), "ws-acme"))

	repo.mu.Lock()
	repo.loadErr = errors.New("connection refused")
	repo.mu.Unlock()

	assert.Error(t, store.Refresh(context.Background(), "ws-acme"))
	assert.Equal(t, "%s | Acme", store.Get("ws-acme").SEO.TitleTemplate)
}

func TestStoreSubscribeNotifiedOnRefresh(t *testing.T) {
	repo := newFakeRepository()
	store := NewStore(repo)

	var gotWorkspace string
	var gotDoc *Document
	store.Subscribe(func(workspaceID string, doc *Document) {
		gotWorkspace = workspaceID
		gotDoc = doc
	})

	require.NoError(t, store.Refresh(context.Background(), "ws-acme"))

	assert.Equal(t, "ws-acme", gotWorkspace)
	require.NotNil(t, gotDoc)
	assert.NotNil(t, gotDoc.Colors)
}

func TestStoreSubscribeNotNotifiedOnFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.loadErr = errors.New("boom")
	store := NewStore(repo)

	called := false
	store.Subscribe(func(string, *Document) { called = true })

	assert.Error(t, store.Refresh(context.Background(), "ws-acme"))
	assert.False(t, called)
}
