package usecase_test

import (
	"context"

	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// In-memory repository fakes shared by the use-case tests.

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if filter.AgentID != "" && s.AgentID != filter.AgentID {
			continue
		}
		if filter.Since != nil && s.DateOfSale.Before(*filter.Since) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSaleRepo) Update(_ context.Context, s *entity.Sale) error {
	for i, existing := range f.sales {
		if existing.ID == s.ID {
			cp := *s
			f.sales[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeSaleRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.sales {
		if s.ID == id {
			f.sales = append(f.sales[:i], f.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	docs []*entity.SaleHistory
}

func (f *fakeHistoryRepo) Create(_ context.Context, h *entity.SaleHistory) error {
	cp := *h
	f.docs = append(f.docs, &cp)
	return nil
}

func (f *fakeHistoryRepo) GetByID(_ context.Context, id string) (*entity.SaleHistory, error) {
	for _, d := range f.docs {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeHistoryRepo) FindByEntity(_ context.Context, entityID string) ([]*entity.SaleHistory, error) {
	var out []*entity.SaleHistory
	for _, d := range f.docs {
		if d.SaleID == entityID || d.AutoSaleID == entityID || d.LeadID == entityID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) FindByEntityIDs(_ context.Context, entityIDs []string) (map[string][]*entity.SaleHistory, error) {
	out := map[string][]*entity.SaleHistory{}
	for _, id := range entityIDs {
		docs, _ := f.FindByEntity(context.Background(), id)
		if len(docs) > 0 {
			out[id] = docs
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) AppendHistory(_ context.Context, id string, e entity.HistoryEntry) error {
	for _, d := range f.docs {
		if d.ID == id {
			d.AppendHistory(e)
			return nil
		}
	}
	return nil
}

func (f *fakeHistoryRepo) AppendComment(_ context.Context, id string, c entity.CommentEntry) error {
	for _, d := range f.docs {
		if d.ID == id {
			d.AppendComment(c)
			return nil
		}
	}
	return nil
}

func (f *fakeHistoryRepo) DeleteByEntity(_ context.Context, entityID string) error {
	var kept []*entity.SaleHistory
	for _, d := range f.docs {
		if d.SaleID == entityID || d.AutoSaleID == entityID || d.LeadID == entityID {
			continue
		}
		kept = append(kept, d)
	}
	f.docs = kept
	return nil
}

type fakeAutoSaleRepo struct {
	sales []*entity.AutoSale
}

func (f *fakeAutoSaleRepo) Create(_ context.Context, s *entity.AutoSale) error {
	cp := *s
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeAutoSaleRepo) GetByID(_ context.Context, id string) (*entity.AutoSale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAutoSaleRepo) List(_ context.Context) ([]*entity.AutoSale, error) {
	out := make([]*entity.AutoSale, 0, len(f.sales))
	for _, s := range f.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAutoSaleRepo) Update(_ context.Context, s *entity.AutoSale) error {
	for i, existing := range f.sales {
		if existing.ID == s.ID {
			cp := *s
			f.sales[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeAutoSaleRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.sales {
		if s.ID == id {
			f.sales = append(f.sales[:i], f.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLeadRepo struct {
	leads []*entity.Lead
}

func (f *fakeLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	cp := *l
	f.leads = append(f.leads, &cp)
	return nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) List(_ context.Context) ([]*entity.Lead, error) {
	out := make([]*entity.Lead, 0, len(f.leads))
	for _, l := range f.leads {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	for i, existing := range f.leads {
		if existing.ID == l.ID {
			cp := *l
			f.leads[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeLeadRepo) Delete(_ context.Context, id string) error {
	for i, l := range f.leads {
		if l.ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner runs fn directly against the same fakes; there is no
// rollback, which the tests do not rely on.
type fakeTxRunner struct {
	sales     *fakeSaleRepo
	autoSales *fakeAutoSaleRepo
	leads     *fakeLeadRepo
	histories *fakeHistoryRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	sales repository.SaleRepository,
	autoSales repository.AutoSaleRepository,
	leads repository.LeadRepository,
	histories repository.SaleHistoryRepository,
) error) error {
	return fn(f.sales, f.autoSales, f.leads, f.histories)
}

// fakeCSV records the dataset it was asked to serialize.
type fakeCSV struct {
	last ports.Dataset
}

func (f *fakeCSV) Write(ds ports.Dataset) ([]byte, error) {
	f.last = ds
	return []byte("csv-bytes"), nil
}
