package branding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uniafy/console-backend/internal/models"
	"github.com/uniafy/console-backend/internal/tenant"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotProvisioned is returned when a save targets a workspace whose
// branding row was never created. Rows are provisioned by workspace setup,
// never by the editor.
var ErrNotProvisioned = errors.New("branding row not provisioned for workspace")

// GormRepository persists documents in the workspace_brandings table as a
// single JSONB column, replaced wholesale on save.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Load(ctx context.Context, workspaceID string) (*Document, error) {
	var row models.WorkspaceBranding
	err := r.db.WithContext(ctx).Scopes(tenant.ForWorkspace(workspaceID)).First(&row).Error
	if err != nil {
		return nil, fmt.Errorf("load branding for %s: %w", workspaceID, err)
	}

	var doc Document
	if len(row.Branding) > 0 {
		if err := json.Unmarshal(row.Branding, &doc); err != nil {
			// Malformed rows degrade to defaults rather than failing the boot.
			slog.Error("malformed branding document, using defaults",
				"workspace_id", workspaceID, "error", err)
			return &Document{}, nil
		}
	}
	return &doc, nil
}

func (r *GormRepository) Save(ctx context.Context, workspaceID string, doc *Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal branding document: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.WorkspaceBranding{}).
		Scopes(tenant.ForWorkspace(workspaceID)).
		Update("branding", datatypes.JSON(payload))
	if result.Error != nil {
		return fmt.Errorf("save branding for %s: %w", workspaceID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotProvisioned
	}
	return nil
}

// Provision creates default branding rows for every known workspace that
// does not have one yet. Runs at boot after migrations.
func (r *GormRepository) Provision(workspaceIDs []string) error {
	for _, ws := range workspaceIDs {
		var existing models.WorkspaceBranding
		err := r.db.Scopes(tenant.ForWorkspace(ws)).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check branding row for %s: %w", ws, err)
		}

		payload, err := json.Marshal(DefaultDocument())
		if err != nil {
			return fmt.Errorf("marshal default branding: %w", err)
		}
		row := models.WorkspaceBranding{
			WorkspaceID: ws,
			Branding:    datatypes.JSON(payload),
		}
		if err := r.db.Create(&row).Error; err != nil {
			return fmt.Errorf("provision branding row for %s: %w", ws, err)
		}
		slog.Info("provisioned default branding", "workspace_id", ws)
	}
	return nil
}
