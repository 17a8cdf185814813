package repository

import (
	"context"
	"time"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

// SaleFilter narrows sale listings. Zero values mean "no filter".
type SaleFilter struct {
	AgentID string
	Since   *time.Time // lower bound on dateOfSale
}

// SaleRepository persistence port for home-warranty sales.
// List returns records newest first with the Agent reference populated.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error
}

// AutoSaleRepository persistence port for auto-warranty sales.
type AutoSaleRepository interface {
	Create(ctx context.Context, sale *entity.AutoSale) error
	GetByID(ctx context.Context, id string) (*entity.AutoSale, error)
	List(ctx context.Context) ([]*entity.AutoSale, error)
	Update(ctx context.Context, sale *entity.AutoSale) error
	Delete(ctx context.Context, id string) error
}

// LeadRepository persistence port for auto-warranty leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}
