package tenant

import "gorm.io/gorm"

// ForWorkspace returns a GORM scope that filters by workspace_id.
func ForWorkspace(workspaceID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("workspace_id = ?", workspaceID)
	}
}
