package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repositories bound to it and
// commits, rolling back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	sales repository.SaleRepository,
	autoSales repository.AutoSaleRepository,
	leads repository.LeadRepository,
	histories repository.SaleHistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	autoSaleRepo := NewAutoSaleRepository(tx)
	leadRepo := NewLeadRepository(tx)
	historyRepo := NewSaleHistoryRepository(tx)

	if err := fn(saleRepo, autoSaleRepo, leadRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
