package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/branding"
	"github.com/uniafy/console-backend/internal/tenant"
)

// LegalHandler serves the hosted legal pages. They render with the
// workspace's branding so they look like part of the product.
type LegalHandler struct {
	registry *tenant.Registry
	store    *branding.Store
}

func NewLegalHandler(registry *tenant.Registry, store *branding.Store) *LegalHandler {
	return &LegalHandler{registry: registry, store: store}
}

func (h *LegalHandler) workspaceName(workspaceID string) string {
	if cfg := h.registry.Get(workspaceID); cfg != nil && cfg.Name != "" {
		return cfg.Name
	}
	return "Uniafy"
}

func (h *LegalHandler) pageStyle(workspaceID string) string {
	doc := h.store.Get(workspaceID)
	colors := doc.Colors
	font := "-apple-system,BlinkMacSystemFont,sans-serif"
	if doc.UI != nil && doc.UI.FontFamily != "" {
		font = doc.UI.FontFamily
	}
	return `body{font-family:` + font + `;max-width:800px;margin:0 auto;padding:20px;` +
		`background:` + branding.CSSColor(colors.Background) + `;` +
		`color:` + branding.CSSColor(colors.TextPrimary) + `}` +
		`h1,h2{color:` + branding.CSSColor(colors.Primary) + `}` +
		`h2{margin-top:30px}` +
		`footer{margin-top:50px;color:` + branding.CSSColor(colors.TextSecondary) + `;font-size:0.85em}`
}

func (h *LegalHandler) footer(workspaceID string) string {
	doc := h.store.Get(workspaceID)
	if doc.Footer == nil || doc.Footer.Copyright == "" {
		return ""
	}
	return `<footer>` + doc.Footer.Copyright + `</footer>`
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	name := h.workspaceName(workspaceID)

	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - ` + name + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + h.pageStyle(workspaceID) + `</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address and workspace usage data to provide our services.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate ` + name + `, authenticate your account, and improve our services.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the account settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact your workspace administrator.</p>
` + h.footer(workspaceID) + `
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	name := h.workspaceName(workspaceID)

	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - ` + name + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>` + h.pageStyle(workspaceID) + `</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Acceptance</h2>
<p>By using ` + name + `, you agree to these terms.</p>
<h2>Accounts</h2>
<p>You are responsible for safeguarding your credentials and all activity under your account.</p>
<h2>Acceptable Use</h2>
<p>You may not misuse the service, attempt to access other workspaces, or disrupt operation.</p>
<h2>Termination</h2>
<p>Accounts that violate these terms may be suspended or removed.</p>
<h2>Changes</h2>
<p>We may update these terms; continued use constitutes acceptance of the current version.</p>
` + h.footer(workspaceID) + `
</body></html>`)
}
