package dto

// SwitchProfileRequest selects a named color profile in the open draft.
type SwitchProfileRequest struct {
	Name string `json:"name"`
}

// ApplyPresetRequest applies a canned color preset to the open draft.
type ApplyPresetRequest struct {
	ID string `json:"id"`
}

// ResetRequest restores a section (or everything) to factory defaults.
// Confirm must be true; resets are destructive draft replacements.
type ResetRequest struct {
	Scope   string `json:"scope"`
	Confirm bool   `json:"confirm"`
}

// UploadResponse returns the public URL of an uploaded asset.
type UploadResponse struct {
	URL string `json:"url"`
}

// TitleResponse carries a resolved page title.
type TitleResponse struct {
	Title string `json:"title"`
}

// BillingStatusResponse feeds the dashboard trial banner.
type BillingStatusResponse struct {
	Status        string `json:"status"`
	PlanID        string `json:"plan_id,omitempty"`
	TrialDaysLeft int    `json:"trial_days_left"`
	TrialEndsAt   string `json:"trial_ends_at,omitempty"`
}
