package dto

// BillingWebhook is the envelope posted by the billing provider.
type BillingWebhook struct {
	Event BillingEvent `json:"event"`
}

// BillingEvent describes one subscription lifecycle change.
type BillingEvent struct {
	Type           string `json:"type"`
	CustomerID     string `json:"customer_id"`
	PlanID         string `json:"plan_id"`
	PurchasedAtMs  int64  `json:"purchased_at_ms"`
	ExpirationAtMs int64  `json:"expiration_at_ms"`
	TrialEndAtMs   int64  `json:"trial_end_at_ms"`
}
