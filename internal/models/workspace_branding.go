package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkspaceBranding holds one workspace's entire white-label configuration
// as a single JSONB document. Saves replace the whole column; there is no
// field-level persistence. Rows are provisioned at workspace setup and
// never deleted, only reset to defaults.
type WorkspaceBranding struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID string         `gorm:"size:50;not null;uniqueIndex" json:"workspace_id"`
	Branding    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"branding"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate ensures UUID is set before creation.
func (wb *WorkspaceBranding) BeforeCreate(tx *gorm.DB) error {
	if wb.ID == uuid.Nil {
		wb.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for WorkspaceBranding.
func (WorkspaceBranding) TableName() string {
	return "workspace_brandings"
}
