package usecase

import (
	"context"

	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// TxRunner executes fn inside one storage transaction, with repositories
// bound to that transaction. Used by the cascading record deletes so the
// record and its audit-trail documents disappear together or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.SaleRepository,
		autoSales repository.AutoSaleRepository,
		leads repository.LeadRepository,
		histories repository.SaleHistoryRepository,
	) error) error
}
