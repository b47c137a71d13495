package tenant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspaces.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"workspaces": [
			{
				"workspace_id": "ws-acme",
				"name": "Acme Agency",
				"domain": "console.acme.example",
				"plan": "pro",
				"features": {"white_label": true},
				"billing_webhook_secret": "shh"
			},
			{
				"workspace_id": "ws-borealis",
				"name": "Borealis"
			}
		]
	}`), 0o644))

	registry, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Len(t, registry.All(), 2)
	assert.True(t, registry.Exists("ws-acme"))
	assert.False(t, registry.Exists("ws-unknown"))

	cfg := registry.Get("ws-acme")
	require.NotNil(t, cfg)
	assert.Equal(t, "Acme Agency", cfg.Name)
	assert.Equal(t, "pro", cfg.Plan)

	assert.True(t, registry.HasFeature("ws-acme", "white_label"))
	assert.False(t, registry.HasFeature("ws-acme", "sso"))
	assert.False(t, registry.HasFeature("ws-borealis", "white_label"))
	assert.False(t, registry.HasFeature("ws-unknown", "white_label"))

	assert.Equal(t, "shh", registry.GetWebhookSecret("ws-acme"))
	assert.Empty(t, registry.GetWebhookSecret("ws-borealis"))
	assert.Empty(t, registry.GetWebhookSecret("ws-unknown"))

	assert.ElementsMatch(t, []string{"ws-acme", "ws-borealis"}, registry.IDs())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspaces.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
