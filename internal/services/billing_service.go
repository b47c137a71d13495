package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/models"
	"github.com/uniafy/console-backend/internal/tenant"
	"gorm.io/gorm"
)

// BillingService applies billing provider webhook events to subscription
// rows. The branding editor never touches these; they only feed the
// dashboard trial banner.
type BillingService struct {
	db *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{db: db}
}

func (s *BillingService) HandleWebhookEvent(workspaceID string, event *dto.BillingEvent) error {
	switch event.Type {
	case "TRIAL_STARTED":
		return s.handleTrialStarted(workspaceID, event)
	case "INITIAL_PURCHASE":
		return s.handleInitialPurchase(workspaceID, event)
	case "RENEWAL":
		return s.handleRenewal(workspaceID, event)
	case "CANCELLATION":
		return s.handleCancellation(workspaceID, event)
	case "EXPIRATION":
		return s.handleExpiration(workspaceID, event)
	default:
		return nil
	}
}

func (s *BillingService) handleTrialStarted(workspaceID string, event *dto.BillingEvent) error {
	sub := models.Subscription{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		CustomerID:  event.CustomerID,
		PlanID:      event.PlanID,
		Status:      "trialing",
		TrialEndsAt: msToTime(event.TrialEndAtMs),
	}
	return s.db.Create(&sub).Error
}

func (s *BillingService) handleInitialPurchase(workspaceID string, event *dto.BillingEvent) error {
	var sub models.Subscription
	err := s.db.Scopes(tenant.ForWorkspace(workspaceID)).Where("customer_id = ?", event.CustomerID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.Subscription{
			ID:                 uuid.New(),
			WorkspaceID:        workspaceID,
			CustomerID:         event.CustomerID,
			PlanID:             event.PlanID,
			Status:             "active",
			CurrentPeriodStart: msToTime(event.PurchasedAtMs),
			CurrentPeriodEnd:   msToTime(event.ExpirationAtMs),
		}
		return s.db.Create(&sub).Error
	} else if err != nil {
		return fmt.Errorf("lookup subscription: %w", err)
	}

	return s.db.Model(&sub).Updates(map[string]interface{}{
		"status":               "active",
		"plan_id":              event.PlanID,
		"current_period_start": msToTime(event.PurchasedAtMs),
		"current_period_end":   msToTime(event.ExpirationAtMs),
	}).Error
}

func (s *BillingService) handleRenewal(workspaceID string, event *dto.BillingEvent) error {
	var sub models.Subscription
	if err := s.db.Scopes(tenant.ForWorkspace(workspaceID)).Where("customer_id = ?", event.CustomerID).First(&sub).Error; err != nil {
		return fmt.Errorf("subscription not found for renewal: %w", err)
	}

	return s.db.Model(&sub).Updates(map[string]interface{}{
		"status":               "active",
		"current_period_end":   msToTime(event.ExpirationAtMs),
		"current_period_start": msToTime(event.PurchasedAtMs),
	}).Error
}

func (s *BillingService) handleCancellation(workspaceID string, event *dto.BillingEvent) error {
	return s.db.Model(&models.Subscription{}).
		Scopes(tenant.ForWorkspace(workspaceID)).
		Where("customer_id = ?", event.CustomerID).
		Update("status", "cancelled").Error
}

func (s *BillingService) handleExpiration(workspaceID string, event *dto.BillingEvent) error {
	return s.db.Model(&models.Subscription{}).
		Scopes(tenant.ForWorkspace(workspaceID)).
		Where("customer_id = ?", event.CustomerID).
		Update("status", "expired").Error
}

// Status resolves the workspace's current subscription state for the trial
// banner. Workspaces with no subscription row report as trialing with zero
// days left.
func (s *BillingService) Status(workspaceID string) (*dto.BillingStatusResponse, error) {
	var sub models.Subscription
	err := s.db.Scopes(tenant.ForWorkspace(workspaceID)).Order("updated_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.BillingStatusResponse{Status: "trialing"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}

	resp := &dto.BillingStatusResponse{
		Status: sub.Status,
		PlanID: sub.PlanID,
	}
	if sub.Status == "trialing" && !sub.TrialEndsAt.IsZero() {
		resp.TrialEndsAt = sub.TrialEndsAt.UTC().Format(time.RFC3339)
		if left := time.Until(sub.TrialEndsAt); left > 0 {
			resp.TrialDaysLeft = int(left.Hours()/24) + 1
		}
	}
	return resp, nil
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
