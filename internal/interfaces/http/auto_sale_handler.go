package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain"
)

// AutoSaleHandler handles the auto-warranty sale routes.
type AutoSaleHandler struct {
	uc *usecase.AutoSaleUseCase
}

// NewAutoSaleHandler builds the auto-sale handler.
func NewAutoSaleHandler(uc *usecase.AutoSaleUseCase) *AutoSaleHandler {
	return &AutoSaleHandler{uc: uc}
}

// Create stores an auto sale owned by the acting agent.
func (h *AutoSaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAutoSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns every auto sale.
func (h *AutoSaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update applies a partial update to an auto sale.
func (h *AutoSaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAutoSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete removes an auto sale and its audit trail.
func (h *AutoSaleHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportCSV streams every auto sale as a CSV download.
func (h *AutoSaleHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="auto_warranty_sales.csv"`)
	return c.Send(data)
}
