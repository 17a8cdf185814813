package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.SaleHistoryRepository = (*SaleHistoryRepo)(nil)

const historyColumns = `id, identifier, sale_id, auto_sale_id, lead_id, status, history, comments`

// SaleHistoryRepo PostgreSQL implementation of the SaleHistoryRepository
// port. History and comment arrays live in jsonb columns; appends go
// through a single jsonb concatenation so concurrent writers never lose
// entries.
type SaleHistoryRepo struct {
	q Querier
}

// NewSaleHistoryRepository builds the persistence adapter for audit-trail
// documents.
func NewSaleHistoryRepository(q Querier) *SaleHistoryRepo {
	return &SaleHistoryRepo{q: q}
}

// Create persists a new audit-trail document.
func (r *SaleHistoryRepo) Create(ctx context.Context, h *entity.SaleHistory) error {
	historyJSON, err := json.Marshal(emptySlice(h.History))
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	commentsJSON, err := json.Marshal(emptySlice(h.Comments))
	if err != nil {
		return fmt.Errorf("marshal comments: %w", err)
	}
	query := `
		INSERT INTO sale_histories (id, identifier, sale_id, auto_sale_id, lead_id, status, history, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		h.ID, h.Identifier, nullable(h.SaleID), nullable(h.AutoSaleID), nullable(h.LeadID),
		h.Status, historyJSON, commentsJSON,
	)
	if err != nil {
		return fmt.Errorf("insert sale history: %w", err)
	}
	return nil
}

// GetByID fetches a document by its own id. (nil, nil) when no row
// matches.
func (r *SaleHistoryRepo) GetByID(ctx context.Context, id string) (*entity.SaleHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM sale_histories WHERE id = $1`
	h, err := scanHistory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale history by id: %w", err)
	}
	return h, nil
}

// FindByEntity returns every document tracking the given record id,
// whichever of the three reference columns holds it.
func (r *SaleHistoryRepo) FindByEntity(ctx context.Context, entityID string) ([]*entity.SaleHistory, error) {
	query := `
		SELECT ` + historyColumns + ` FROM sale_histories
		WHERE sale_id = $1 OR auto_sale_id = $1 OR lead_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("find sale histories: %w", err)
	}
	defer rows.Close()
	return collectHistories(rows)
}

// FindByEntityIDs batch-loads the documents for a listing, keyed by the
// tracked record's id.
func (r *SaleHistoryRepo) FindByEntityIDs(ctx context.Context, entityIDs []string) (map[string][]*entity.SaleHistory, error) {
	if len(entityIDs) == 0 {
		return map[string][]*entity.SaleHistory{}, nil
	}
	query := `
		SELECT ` + historyColumns + ` FROM sale_histories
		WHERE sale_id = ANY($1) OR auto_sale_id = ANY($1) OR lead_id = ANY($1)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("find sale histories by ids: %w", err)
	}
	defer rows.Close()
	docs, err := collectHistories(rows)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]*entity.SaleHistory, len(entityIDs))
	for _, d := range docs {
		for _, ref := range []string{d.SaleID, d.AutoSaleID, d.LeadID} {
			if ref != "" {
				out[ref] = append(out[ref], d)
			}
		}
	}
	return out, nil
}

// AppendHistory appends one entry to the history array and overwrites the
// denormalized status in the same statement.
func (r *SaleHistoryRepo) AppendHistory(ctx context.Context, id string, e entity.HistoryEntry) error {
	entryJSON, err := json.Marshal([]entity.HistoryEntry{e})
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	query := `UPDATE sale_histories SET history = history || $2::jsonb, status = $3 WHERE id = $1`
	_, err = r.q.Exec(ctx, query, id, entryJSON, e.Status)
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// AppendComment appends one comment to the comments array.
func (r *SaleHistoryRepo) AppendComment(ctx context.Context, id string, c entity.CommentEntry) error {
	entryJSON, err := json.Marshal([]entity.CommentEntry{c})
	if err != nil {
		return fmt.Errorf("marshal comment entry: %w", err)
	}
	query := `UPDATE sale_histories SET comments = comments || $2::jsonb WHERE id = $1`
	_, err = r.q.Exec(ctx, query, id, entryJSON)
	if err != nil {
		return fmt.Errorf("append comment entry: %w", err)
	}
	return nil
}

// DeleteByEntity removes every document tracking the given record id.
func (r *SaleHistoryRepo) DeleteByEntity(ctx context.Context, entityID string) error {
	query := `DELETE FROM sale_histories WHERE sale_id = $1 OR auto_sale_id = $1 OR lead_id = $1`
	_, err := r.q.Exec(ctx, query, entityID)
	if err != nil {
		return fmt.Errorf("delete sale histories: %w", err)
	}
	return nil
}

func collectHistories(rows pgx.Rows) ([]*entity.SaleHistory, error) {
	var list []*entity.SaleHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale history: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func scanHistory(row pgx.Row) (*entity.SaleHistory, error) {
	var h entity.SaleHistory
	var saleID, autoSaleID, leadID *string
	var historyJSON, commentsJSON []byte
	err := row.Scan(&h.ID, &h.Identifier, &saleID, &autoSaleID, &leadID, &h.Status, &historyJSON, &commentsJSON)
	if err != nil {
		return nil, err
	}
	if saleID != nil {
		h.SaleID = *saleID
	}
	if autoSaleID != nil {
		h.AutoSaleID = *autoSaleID
	}
	if leadID != nil {
		h.LeadID = *leadID
	}
	if err := json.Unmarshal(historyJSON, &h.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	if err := json.Unmarshal(commentsJSON, &h.Comments); err != nil {
		return nil, fmt.Errorf("unmarshal comments: %w", err)
	}
	return &h, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// emptySlice normalizes nil slices to empty ones so the stored jsonb is
// always an array, never null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
