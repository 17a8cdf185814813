package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/analytics"
)

// DashboardHandler handles the dashboard aggregation routes.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats returns the home-warranty sale windows plus headcounts.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AutoSalesStats returns the auto-warranty sale windows plus headcount.
func (h *DashboardHandler) AutoSalesStats(c *fiber.Ctx) error {
	out, err := h.uc.AutoSalesStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GraphStats returns the per-day sale creation series.
func (h *DashboardHandler) GraphStats(c *fiber.Ctx) error {
	out, err := h.uc.GraphStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecentSales returns the latest sales with agent identity.
func (h *DashboardHandler) RecentSales(c *fiber.Ctx) error {
	out, err := h.uc.RecentSales(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AgentSalesCounts returns the acting agent's own per-window counts.
func (h *DashboardHandler) AgentSalesCounts(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.uc.AgentSalesCounts(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
