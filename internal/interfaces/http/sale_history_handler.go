package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain"
)

// SaleHistoryHandler handles the shared audit-trail routes.
type SaleHistoryHandler struct {
	uc *usecase.SaleHistoryUseCase
}

// NewSaleHistoryHandler builds the history handler.
func NewSaleHistoryHandler(uc *usecase.SaleHistoryUseCase) *SaleHistoryHandler {
	return &SaleHistoryHandler{uc: uc}
}

// GetHistory returns every audit-trail document tracking the record in
// the path, whichever record type it is.
func (h *SaleHistoryHandler) GetHistory(c *fiber.Ctx) error {
	out, err := h.uc.GetHistory(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateWithDetails creates a new audit-trail document from a batch of
// entries and comments.
func (h *SaleHistoryHandler) CreateWithDetails(c *fiber.Ctx) error {
	var in dto.CreateHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.CreateWithDetails(c.Context(), GetActor(c), c.IP(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddComment appends a reviewer comment to the document in the path.
func (h *SaleHistoryHandler) AddComment(c *fiber.Ctx) error {
	var in dto.AddCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.AddComment(c.Context(), GetActor(c), c.Params("id"), c.IP(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus appends a status-change entry and moves the document's
// status.
func (h *SaleHistoryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetActor(c), c.Params("id"), c.IP(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
