package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription tracks a workspace's billing state. The console only reads
// it for the trial banner; writes come from the billing provider webhook.
type Subscription struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID        string    `gorm:"size:50;not null;index" json:"-"`
	CustomerID         string    `gorm:"index;size:255" json:"customer_id"`
	PlanID             string    `gorm:"size:255" json:"plan_id"`
	Status             string    `gorm:"not null;default:'trialing';size:50" json:"status"`
	CurrentPeriodStart time.Time `json:"current_period_start"`
	CurrentPeriodEnd   time.Time `json:"current_period_end"`
	TrialEndsAt        time.Time `json:"trial_ends_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
