package repository

import (
	"context"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// SaleHistoryRepository persistence port for the append-only audit trail.
//
// Append* mutate a single existing document by its own id (not the tracked
// record's id) and never rewrite previously stored entries; the store's
// per-document atomic update is the only ordering guarantee for concurrent
// writers.
type SaleHistoryRepository interface {
	Create(ctx context.Context, h *entity.SaleHistory) error
	GetByID(ctx context.Context, id string) (*entity.SaleHistory, error)
	// FindByEntity matches sale_id OR auto_sale_id OR lead_id against
	// entityID. At most one column matches in practice.
	FindByEntity(ctx context.Context, entityID string) ([]*entity.SaleHistory, error)
	// FindByEntityIDs batch-loads histories for listings, keyed by the
	// tracked record's id.
	FindByEntityIDs(ctx context.Context, entityIDs []string) (map[string][]*entity.SaleHistory, error)
	// AppendHistory appends one entry and overwrites the denormalized
	// status in the same statement.
	AppendHistory(ctx context.Context, id string, e entity.HistoryEntry) error
	AppendComment(ctx context.Context, id string, c entity.CommentEntry) error
	// DeleteByEntity removes every history document tracking entityID.
	// Used by the cascading record delete.
	DeleteByEntity(ctx context.Context, entityID string) error
}
