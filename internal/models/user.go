package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a console operator account, scoped to one workspace.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID string         `gorm:"size:50;not null;uniqueIndex:idx_users_workspace_email" json:"-"`
	Email       string         `gorm:"not null;size:255;uniqueIndex:idx_users_workspace_email" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
