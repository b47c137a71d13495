package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/services"
	"github.com/uniafy/console-backend/internal/tenant"
)

type BillingHandler struct {
	billingService *services.BillingService
}

func NewBillingHandler(billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Status feeds the dashboard trial banner.
func (h *BillingHandler) Status(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	resp, err := h.billingService.Status(workspaceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load billing status",
		})
	}
	return c.JSON(resp)
}
