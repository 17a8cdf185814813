package dto

import (
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// SystemDataDTO client-reported browser/device info.
type SystemDataDTO struct {
	Browser string `json:"browser,omitempty"`
	Device  string `json:"device,omitempty"`
}

// HistoryEntryRequest one review action in a batch create. Timestamp is
// optional; when absent the server stamps the current time.
type HistoryEntryRequest struct {
	Action          string        `json:"action"`
	Status          string        `json:"status"`
	Reason          string        `json:"reason"`
	RejectionReason string        `json:"rejectionReason"`
	Notes           string        `json:"notes"`
	NextAction      string        `json:"nextAction"`
	QualityScore    int           `json:"qualityScore"`
	Timestamp       *Date         `json:"timestamp"`
	SystemData      SystemDataDTO `json:"systemData"`
}

// CommentEntryRequest one reviewer comment in a batch create.
type CommentEntryRequest struct {
	Comment    string        `json:"comment"`
	Timestamp  *Date         `json:"timestamp"`
	SystemData SystemDataDTO `json:"systemData"`
}

// CreateHistoryRequest batch payload for POST /sale-history/history.
// Exactly one of Sale/AutoSale/Lead is expected to be set.
type CreateHistoryRequest struct {
	Sale       string                `json:"sale"`
	AutoSale   string                `json:"autoSale"`
	Lead       string                `json:"lead"`
	Identifier string                `json:"identifier"`
	History    []HistoryEntryRequest `json:"history"`
	Comments   []CommentEntryRequest `json:"comments"`
}

// AddCommentRequest payload for POST /sale-history/:id/comments.
type AddCommentRequest struct {
	Comment    string        `json:"comment"`
	SystemData SystemDataDTO `json:"systemData"`
}

// UpdateStatusRequest payload for PATCH /sale-history/:id/status.
type UpdateStatusRequest struct {
	Status          string        `json:"status"`
	Reason          string        `json:"reason"`
	RejectionReason string        `json:"rejectionReason"`
	Notes           string        `json:"notes"`
	SystemData      SystemDataDTO `json:"systemData"`
}

// SaleHistoryResponse one audit-trail document.
type SaleHistoryResponse struct {
	ID         string                `json:"id"`
	Identifier string                `json:"identifier,omitempty"`
	Sale       string                `json:"sale,omitempty"`
	AutoSale   string                `json:"autoSale,omitempty"`
	Lead       string                `json:"lead,omitempty"`
	Status     string                `json:"status"`
	History    []entity.HistoryEntry `json:"history"`
	Comments   []entity.CommentEntry `json:"comments"`
}

// HistoryListResponse body for GET /sale-history/:id/history.
type HistoryListResponse struct {
	History []SaleHistoryResponse `json:"history"`
}

// FromHistoryEntity maps the entity document to its response shape.
func FromHistoryEntity(h *entity.SaleHistory) SaleHistoryResponse {
	return SaleHistoryResponse{
		ID:         h.ID,
		Identifier: h.Identifier,
		Sale:       h.SaleID,
		AutoSale:   h.AutoSaleID,
		Lead:       h.LeadID,
		Status:     h.Status,
		History:    h.History,
		Comments:   h.Comments,
	}
}
