package tenant

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// WorkspaceConfig describes one agency workspace served by the console.
type WorkspaceConfig struct {
	WorkspaceID   string          `json:"workspace_id"`
	Name          string          `json:"name"`
	Domain        string          `json:"domain"`
	Plan          string          `json:"plan"`
	Features      map[string]bool `json:"features"`
	WebhookSecret string          `json:"billing_webhook_secret"`
}

type WorkspacesFile struct {
	Workspaces []WorkspaceConfig `json:"workspaces"`
}

type Registry struct {
	mu         sync.RWMutex
	workspaces map[string]*WorkspaceConfig
}

func NewRegistry() *Registry {
	return &Registry{
		workspaces: make(map[string]*WorkspaceConfig),
	}
}

func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspaces config: %w", err)
	}

	var file WorkspacesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces config: %w", err)
	}

	registry := NewRegistry()
	for i := range file.Workspaces {
		registry.Register(&file.Workspaces[i])
	}
	return registry, nil
}

func (r *Registry) Register(cfg *WorkspaceConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[cfg.WorkspaceID] = cfg
}

func (r *Registry) Get(workspaceID string) *WorkspaceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workspaces[workspaceID]
}

func (r *Registry) Exists(workspaceID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.workspaces[workspaceID]
	return ok
}

func (r *Registry) HasFeature(workspaceID, feature string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.workspaces[workspaceID]
	if !ok {
		return false
	}
	return cfg.Features[feature]
}

func (r *Registry) All() []*WorkspaceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*WorkspaceConfig, 0, len(r.workspaces))
	for _, cfg := range r.workspaces {
		result = append(result, cfg)
	}
	return result
}

// IDs returns every registered workspace id, used for boot-time branding
// provisioning.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.workspaces))
	for id := range r.workspaces {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry) GetWebhookSecret(workspaceID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.workspaces[workspaceID]
	if !ok {
		return ""
	}
	return cfg.WebhookSecret
}
