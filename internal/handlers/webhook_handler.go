package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/realtime"
	"github.com/uniafy/console-backend/internal/services"
	"github.com/uniafy/console-backend/internal/tenant"
)

type WebhookHandler struct {
	billingService *services.BillingService
	registry       *tenant.Registry
	hub            *realtime.Hub
}

func NewWebhookHandler(billingService *services.BillingService, registry *tenant.Registry, hub *realtime.Hub) *WebhookHandler {
	return &WebhookHandler{
		billingService: billingService,
		registry:       registry,
		hub:            hub,
	}
}

// HandleBilling routes billing webhooks by :workspace_id path param with
// per-workspace auth.
func (h *WebhookHandler) HandleBilling(c *fiber.Ctx) error {
	workspaceID := c.Params("workspace_id")
	if workspaceID == "" || !h.registry.Exists(workspaceID) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown workspace",
		})
	}

	expectedSecret := h.registry.GetWebhookSecret(workspaceID)
	if expectedSecret == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured for this workspace",
		})
	}

	authHeader := c.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(authHeader), []byte(expectedSecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var webhook dto.BillingWebhook
	if err := c.BodyParser(&webhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}

	if err := h.billingService.HandleWebhookEvent(workspaceID, &webhook.Event); err != nil {
		slog.Error("webhook processing failed", "workspace_id", workspaceID, "event_type", webhook.Event.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process webhook event",
		})
	}

	slog.Info("webhook processed", "workspace_id", workspaceID, "event_type", webhook.Event.Type)
	h.hub.Broadcast(workspaceID, realtime.Event{Type: realtime.EventSubscriptionUpdated})
	return c.JSON(fiber.Map{"received": true})
}
