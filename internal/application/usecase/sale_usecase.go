// Package usecase implements the record workflows: home-warranty sales,
// auto-warranty sales and leads, plus their shared audit trail.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// Listing windows accepted by the filter query parameter.
var listWindows = []string{"24hours", "7days", "30days", "90days", "all"}

// sinceForWindow converts a window name into a lower bound on dateOfSale.
// "all" and "" mean no bound. Unknown windows are a BadRequestError.
func sinceForWindow(window string, now time.Time) (*time.Time, error) {
	switch window {
	case "", "all":
		return nil, nil
	case "24hours":
		t := now.Add(-24 * time.Hour)
		return &t, nil
	case "7days":
		t := now.Add(-7 * 24 * time.Hour)
		return &t, nil
	case "30days":
		t := now.Add(-30 * 24 * time.Hour)
		return &t, nil
	case "90days":
		t := now.Add(-90 * 24 * time.Hour)
		return &t, nil
	default:
		return nil, domain.NewBadRequest("Invalid filter type")
	}
}

// SaleUseCase workflows for home-warranty sale records.
type SaleUseCase struct {
	sales     repository.SaleRepository
	histories repository.SaleHistoryRepository
	tx        TxRunner
	csv       ports.DatasetWriter
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(sales repository.SaleRepository, histories repository.SaleHistoryRepository, tx TxRunner, csv ports.DatasetWriter) *SaleUseCase {
	return &SaleUseCase{sales: sales, histories: histories, tx: tx, csv: csv}
}

// Create stores a new sale owned by the acting agent. Any agent reference
// in the payload is discarded; ownership always comes from the session.
func (uc *SaleUseCase) Create(ctx context.Context, actor *dto.Actor, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	sale := &entity.Sale{
		ID:                    uuid.New().String(),
		Campaign:              entity.CampaignHomeWarranty,
		DateOfSale:            in.DateOfSale.Time,
		CustomerName:          in.CustomerName,
		PrimaryPhone:          in.PrimaryPhone,
		CampaignType:          in.CampaignType,
		ConfirmationNumber:    in.ConfirmationNumber,
		PlanName:              in.PlanName,
		Address:               in.Address,
		Email:                 in.Email,
		AgentName:             in.AgentName,
		ActivationFee:         in.ActivationFee,
		PaymentMode:           in.PaymentMode,
		BankName:              in.BankName,
		ChequeOrCardNumber:    in.ChequeOrCardNumber,
		CVV:                   in.CVV,
		ExpiryDate:            in.ExpiryDate,
		MerchantName:          in.MerchantName,
		CheckingAccountNumber: in.CheckingAccountNumber,
		RoutingNumber:         in.RoutingNumber,
		AlternativePhone:      in.AlternativePhone,
		AgentID:               actor.ID,
		CreatedAt:             time.Now(),
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	resp := saleToResponse(sale)
	return &dto.CreateSaleResponse{Msg: "Sale created successfully", Sale: resp}, nil
}

// List returns sales newest first with agents expanded and audit-trail
// documents attached. agentID narrows to one agent; window narrows
// dateOfSale to a trailing period.
func (uc *SaleUseCase) List(ctx context.Context, agentID, window string) (*dto.SaleListResponse, error) {
	filter := repository.SaleFilter{}
	if agentID != "" {
		if _, err := uuid.Parse(agentID); err != nil {
			return nil, domain.NewBadRequest("Invalid Agent ID")
		}
		filter.AgentID = agentID
	}
	since, err := sinceForWindow(window, time.Now())
	if err != nil {
		return nil, err
	}
	filter.Since = since

	sales, err := uc.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := uc.attachHistories(ctx, sales); err != nil {
		return nil, err
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleToResponse(s))
	}
	return &dto.SaleListResponse{Sales: out, Count: len(out)}, nil
}

// Update applies a partial update and revalidates the whole record. The
// owning agent and creation time are never touched.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.CreateSaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound(id)
	}

	applySaleUpdates(sale, in)
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	if err := uc.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.CreateSaleResponse{Msg: "Sale updated successfully", Sale: saleToResponse(sale)}, nil
}

// Delete removes the sale and every audit-trail document tracking it, in
// one transaction.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(
		sales repository.SaleRepository,
		_ repository.AutoSaleRepository,
		_ repository.LeadRepository,
		histories repository.SaleHistoryRepository,
	) error {
		sale, err := sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NewNotFound(id)
		}
		if err := histories.DeleteByEntity(ctx, id); err != nil {
			return err
		}
		return sales.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Sale deleted successfully"}, nil
}

// Sale export column order. Matches the review team's import template, so
// order changes break their tooling.
var saleExportHeaders = []string{
	"dateOfSale", "customerName", "primaryPhone", "confirmationNumber",
	"planName", "email", "agentName", "activationFee", "bankName",
	"chequeOrCardNumber", "cvv", "expiryDate", "merchantName",
	"checkingAccountNumber", "routingNumber", "alternativePhone",
	"campaignType", "address", "paymentMode",
}

// ExportCSV serializes every sale to CSV. An empty table is a 404 so the
// frontend can show "nothing to export" instead of an empty download.
func (uc *SaleUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	sales, err := uc.sales.List(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.NewNotFoundMsg("No sales found to export")
	}

	ds := ports.Dataset{Headers: saleExportHeaders}
	for _, s := range sales {
		ds.Rows = append(ds.Rows, []string{
			s.DateOfSale.Format(time.RFC3339), s.CustomerName, s.PrimaryPhone,
			s.ConfirmationNumber, s.PlanName, s.Email, s.AgentName,
			s.ActivationFee.String(), s.BankName, s.ChequeOrCardNumber,
			s.CVV, s.ExpiryDate, s.MerchantName, s.CheckingAccountNumber,
			s.RoutingNumber, s.AlternativePhone, s.CampaignType, s.Address,
			s.PaymentMode,
		})
	}
	return uc.csv.Write(ds)
}

func (uc *SaleUseCase) attachHistories(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	byEntity, err := uc.histories.FindByEntityIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, s := range sales {
		s.Histories = byEntity[s.ID]
	}
	return nil
}

func applySaleUpdates(s *entity.Sale, in dto.UpdateSaleRequest) {
	if in.DateOfSale != nil {
		s.DateOfSale = in.DateOfSale.Time
	}
	if in.CustomerName != nil {
		s.CustomerName = *in.CustomerName
	}
	if in.PrimaryPhone != nil {
		s.PrimaryPhone = *in.PrimaryPhone
	}
	if in.CampaignType != nil {
		s.CampaignType = *in.CampaignType
	}
	if in.ConfirmationNumber != nil {
		s.ConfirmationNumber = *in.ConfirmationNumber
	}
	if in.PlanName != nil {
		s.PlanName = *in.PlanName
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.AgentName != nil {
		s.AgentName = *in.AgentName
	}
	if in.ActivationFee != nil {
		s.ActivationFee = *in.ActivationFee
	}
	if in.PaymentMode != nil {
		s.PaymentMode = *in.PaymentMode
	}
	if in.BankName != nil {
		s.BankName = *in.BankName
	}
	if in.ChequeOrCardNumber != nil {
		s.ChequeOrCardNumber = *in.ChequeOrCardNumber
	}
	if in.CVV != nil {
		s.CVV = *in.CVV
	}
	if in.ExpiryDate != nil {
		s.ExpiryDate = *in.ExpiryDate
	}
	if in.MerchantName != nil {
		s.MerchantName = *in.MerchantName
	}
	if in.CheckingAccountNumber != nil {
		s.CheckingAccountNumber = *in.CheckingAccountNumber
	}
	if in.RoutingNumber != nil {
		s.RoutingNumber = *in.RoutingNumber
	}
	if in.AlternativePhone != nil {
		s.AlternativePhone = *in.AlternativePhone
	}
}

func saleToResponse(s *entity.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:                    s.ID,
		Campaign:              s.Campaign,
		DateOfSale:            s.DateOfSale,
		CustomerName:          s.CustomerName,
		PrimaryPhone:          s.PrimaryPhone,
		CampaignType:          s.CampaignType,
		ConfirmationNumber:    s.ConfirmationNumber,
		PlanName:              s.PlanName,
		Address:               s.Address,
		Email:                 s.Email,
		AgentName:             s.AgentName,
		ActivationFee:         s.ActivationFee,
		PaymentMode:           s.PaymentMode,
		BankName:              s.BankName,
		ChequeOrCardNumber:    s.ChequeOrCardNumber,
		CVV:                   s.CVV,
		ExpiryDate:            s.ExpiryDate,
		MerchantName:          s.MerchantName,
		CheckingAccountNumber: s.CheckingAccountNumber,
		RoutingNumber:         s.RoutingNumber,
		AlternativePhone:      s.AlternativePhone,
		CreatedAt:             s.CreatedAt,
	}
	if s.Agent != nil {
		resp.Agent = &dto.AgentRef{ID: s.Agent.ID, Name: s.Agent.Name, Email: s.Agent.Email}
	}
	for _, h := range s.Histories {
		resp.History = append(resp.History, dto.FromHistoryEntity(h))
	}
	return resp
}
