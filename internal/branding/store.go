package branding

import (
	"context"
	"log/slog"
	"sync"
)

// Repository loads and saves whole branding documents for a workspace.
type Repository interface {
	Load(ctx context.Context, workspaceID string) (*Document, error)
	// Save atomically replaces the workspace's persisted document. It must
	// return ErrNotProvisioned when no row exists; the editor never creates
	// rows implicitly.
	Save(ctx context.Context, workspaceID string, doc *Document) error
}

// Store is the single source of truth every themed surface reads. It caches
// the last successfully loaded document per workspace; a failed refresh
// keeps the previous document (or the factory defaults if nothing ever
// loaded) so dependent renders never break.
type Store struct {
	mu   sync.RWMutex
	repo Repository
	docs map[string]*Document
	subs []func(workspaceID string, doc *Document)
}

func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		docs: make(map[string]*Document),
	}
}

// Get returns the current resolved document for the workspace. Consumers
// must treat it as read-only; the only mutation path is the editor's
// draft → save flow.
func (s *Store) Get(workspaceID string) *Document {
	s.mu.RLock()
	doc, ok := s.docs[workspaceID]
	s.mu.RUnlock()
	if ok {
		return doc
	}
	return DefaultDocument()
}

// Refresh re-loads the workspace document from the repository and notifies
// subscribers. On failure the cached document is retained.
func (s *Store) Refresh(ctx context.Context, workspaceID string) error {
	raw, err := s.repo.Load(ctx, workspaceID)
	if err != nil {
		slog.Error("branding load failed, keeping last good document",
			"workspace_id", workspaceID, "error", err)
		return err
	}

	doc := ApplyDefaults(raw)
	doc.Normalize()

	s.mu.Lock()
	s.docs[workspaceID] = doc
	subs := make([]func(string, *Document), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(workspaceID, doc)
	}
	return nil
}

// Subscribe registers a callback invoked after every successful refresh.
func (s *Store) Subscribe(fn func(workspaceID string, doc *Document)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
