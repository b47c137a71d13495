package branding

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoDraft is returned when an editor operation arrives before a draft
// session was opened (or after it was discarded).
var ErrNoDraft = errors.New("no open draft for workspace")

// Draft is the editor-local working copy of a workspace's document. It
// exists only while the branding editor is open, feeds the live preview,
// and is discarded without trace unless explicitly saved.
type Draft struct {
	Doc      *Document `json:"doc"`
	OpenedAt time.Time `json:"opened_at"`
}

// Sessions holds at most one draft per workspace. Single-operator editing
// is the intended usage; the mutex only guards against concurrent HTTP
// handlers, not concurrent editors.
type Sessions struct {
	mu     sync.Mutex
	store  *Store
	repo   Repository
	drafts map[string]*Draft
}

func NewSessions(store *Store, repo Repository) *Sessions {
	return &Sessions{
		store:  store,
		repo:   repo,
		drafts: make(map[string]*Draft),
	}
}

// Open seeds a fresh draft from the store's current document, replacing any
// previous unsaved draft for the workspace.
func (m *Sessions) Open(workspaceID string) *Document {
	doc := m.store.Get(workspaceID).Clone()
	m.mu.Lock()
	m.drafts[workspaceID] = &Draft{Doc: doc, OpenedAt: time.Now()}
	m.mu.Unlock()
	return doc
}

// Get returns the open draft document.
func (m *Sessions) Get(workspaceID string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		return nil, ErrNoDraft
	}
	return draft.Doc, nil
}

// UpdateSection replaces one section of the draft with the edited state.
// Editors own whole sections and submit them on every change, so this is a
// synchronous whole-section swap, not a field patch.
func (m *Sessions) UpdateSection(workspaceID string, section SectionID, payload *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		return ErrNoDraft
	}

	doc := draft.Doc
	switch section {
	case SectionColors:
		if payload.Colors != nil {
			doc.Colors = payload.Clone().Colors
		}
	case SectionUI:
		if payload.UI != nil {
			doc.UI = payload.Clone().UI
		}
	case SectionLogin:
		if payload.Login != nil {
			doc.Login = payload.Clone().Login
		}
	case SectionPWA:
		if payload.PWA != nil {
			doc.PWA = payload.Clone().PWA
		}
	case SectionSystemPages:
		if payload.SystemPages != nil {
			doc.SystemPages = payload.Clone().SystemPages
		}
	case SectionEmail:
		if payload.Email != nil {
			doc.Email = payload.Clone().Email
		}
	case SectionSounds:
		if payload.Sounds != nil {
			doc.Sounds = payload.Clone().Sounds
		}
	case SectionSEO:
		if payload.SEO != nil {
			doc.SEO = payload.Clone().SEO
		}
	case SectionFooter:
		if payload.Footer != nil {
			doc.Footer = payload.Clone().Footer
		}
	default:
		return errors.New("section is not editable: " + string(section))
	}
	return nil
}

// SwitchProfile runs the profile state machine on the open draft.
func (m *Sessions) SwitchProfile(workspaceID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		return ErrNoDraft
	}
	SwitchProfile(draft.Doc, name)
	return nil
}

// ApplyPreset bulk-applies a canned preset to the open draft.
func (m *Sessions) ApplyPreset(workspaceID, presetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		return ErrNoDraft
	}
	return ApplyPreset(draft.Doc, presetID)
}

// Reset restores the scoped section (or everything) to factory defaults in
// the draft only; the persisted document is untouched until save.
func (m *Sessions) Reset(workspaceID string, scope SectionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		return ErrNoDraft
	}
	return Reset(draft.Doc, scope)
}

// Save serializes the draft as it is at this moment and replaces the
// persisted document in one write. On failure the draft is left exactly as
// it was so the operator can retry; on success the store is refreshed so
// every themed surface picks up the new values.
func (m *Sessions) Save(ctx context.Context, workspaceID string) error {
	m.mu.Lock()
	draft, ok := m.drafts[workspaceID]
	if !ok {
		m.mu.Unlock()
		return ErrNoDraft
	}
	// Work on a snapshot so a failed save cannot leave the draft half
	// normalized.
	candidate := draft.Doc.Clone()
	m.mu.Unlock()

	candidate.SnapshotProfile()
	candidate.Normalize()

	if err := m.repo.Save(ctx, workspaceID, candidate); err != nil {
		return err
	}

	m.mu.Lock()
	if current, ok := m.drafts[workspaceID]; ok && current == draft {
		current.Doc = candidate
	}
	m.mu.Unlock()

	return m.store.Refresh(ctx, workspaceID)
}

// Discard drops the draft without saving.
func (m *Sessions) Discard(workspaceID string) {
	m.mu.Lock()
	delete(m.drafts, workspaceID)
	m.mu.Unlock()
}
