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

// AutoSaleUseCase workflows for auto-warranty sale records.
type AutoSaleUseCase struct {
	autoSales repository.AutoSaleRepository
	histories repository.SaleHistoryRepository
	tx        TxRunner
	csv       ports.DatasetWriter
}

// NewAutoSaleUseCase builds the use case.
func NewAutoSaleUseCase(autoSales repository.AutoSaleRepository, histories repository.SaleHistoryRepository, tx TxRunner, csv ports.DatasetWriter) *AutoSaleUseCase {
	return &AutoSaleUseCase{autoSales: autoSales, histories: histories, tx: tx, csv: csv}
}

// Create stores a new auto sale owned by the acting agent.
func (uc *AutoSaleUseCase) Create(ctx context.Context, actor *dto.Actor, in dto.CreateAutoSaleRequest) (*dto.CreateAutoSaleResponse, error) {
	sale := &entity.AutoSale{
		ID:                    uuid.New().String(),
		Campaign:              entity.CampaignAutoWarranty,
		DateOfSale:            in.DateOfSale.Time,
		CustomerName:          in.CustomerName,
		PrimaryPhone:          in.PrimaryPhone,
		ConfirmationNumber:    in.ConfirmationNumber,
		Address:               in.Address,
		Email:                 in.Email,
		AgentName:             in.AgentName,
		ActivationFee:         in.ActivationFee,
		PaymentMode:           in.PaymentMode,
		CampaignType:          in.CampaignType,
		PlanName:              in.PlanName,
		BankName:              in.BankName,
		ChequeOrCardNumber:    in.ChequeOrCardNumber,
		CVV:                   in.CVV,
		ExpiryDate:            in.ExpiryDate,
		CheckingAccountNumber: in.CheckingAccountNumber,
		RoutingNumber:         in.RoutingNumber,
		AlternativePhone:      in.AlternativePhone,
		VINNumber:             in.VINNumber,
		VehicleMileage:        in.VehicleMileage,
		VehicleModel:          in.VehicleModel,
		FronterName:           in.FronterName,
		CloserName:            in.CloserName,
		AgentID:               actor.ID,
		CreatedAt:             time.Now(),
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	if err := uc.autoSales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.CreateAutoSaleResponse{Msg: "Sale created successfully", Sale: autoSaleToResponse(sale)}, nil
}

// List returns every auto sale newest first with agents expanded and
// audit-trail documents attached.
func (uc *AutoSaleUseCase) List(ctx context.Context) (*dto.AutoSaleListResponse, error) {
	sales, err := uc.autoSales.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.attachHistories(ctx, sales); err != nil {
		return nil, err
	}

	out := make([]dto.AutoSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, autoSaleToResponse(s))
	}
	return &dto.AutoSaleListResponse{Sales: out, Count: len(out)}, nil
}

// Update applies a partial update and revalidates the whole record.
func (uc *AutoSaleUseCase) Update(ctx context.Context, id string, in dto.UpdateAutoSaleRequest) (*dto.CreateAutoSaleResponse, error) {
	sale, err := uc.autoSales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.NewNotFound(id)
	}

	applyAutoSaleUpdates(sale, in)
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	if err := uc.autoSales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.CreateAutoSaleResponse{Msg: "Sale updated successfully", Sale: autoSaleToResponse(sale)}, nil
}

// Delete removes the auto sale and its audit-trail documents in one
// transaction.
func (uc *AutoSaleUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(
		_ repository.SaleRepository,
		autoSales repository.AutoSaleRepository,
		_ repository.LeadRepository,
		histories repository.SaleHistoryRepository,
	) error {
		sale, err := autoSales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.NewNotFound(id)
		}
		if err := histories.DeleteByEntity(ctx, id); err != nil {
			return err
		}
		return autoSales.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Sale deleted successfully"}, nil
}

var autoSaleExportHeaders = []string{
	"dateOfSale", "customerName", "primaryPhone", "confirmationNumber",
	"address", "email", "agentName", "activationFee", "paymentMode",
	"campaignType", "planName", "bankName", "chequeOrCardNumber", "cvv",
	"expiryDate", "checkingAccountNumber", "routingNumber",
	"alternativePhone", "vinNumber", "vehicleMileage", "vehicleModel",
	"fronterName", "closerName",
}

// ExportCSV serializes every auto sale to CSV; 404 when the table is
// empty.
func (uc *AutoSaleUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	sales, err := uc.autoSales.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.NewNotFoundMsg("No auto sales found to export")
	}

	ds := ports.Dataset{Headers: autoSaleExportHeaders}
	for _, s := range sales {
		ds.Rows = append(ds.Rows, []string{
			s.DateOfSale.Format(time.RFC3339), s.CustomerName, s.PrimaryPhone,
			s.ConfirmationNumber, s.Address, s.Email, s.AgentName,
			s.ActivationFee.String(), s.PaymentMode, s.CampaignType,
			s.PlanName, s.BankName, s.ChequeOrCardNumber, s.CVV,
			s.ExpiryDate, s.CheckingAccountNumber, s.RoutingNumber,
			s.AlternativePhone, s.VINNumber, s.VehicleMileage,
			s.VehicleModel, s.FronterName, s.CloserName,
		})
	}
	return uc.csv.Write(ds)
}

func (uc *AutoSaleUseCase) attachHistories(ctx context.Context, sales []*entity.AutoSale) error {
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

func applyAutoSaleUpdates(s *entity.AutoSale, in dto.UpdateAutoSaleRequest) {
	if in.DateOfSale != nil {
		s.DateOfSale = in.DateOfSale.Time
	}
	if in.CustomerName != nil {
		s.CustomerName = *in.CustomerName
	}
	if in.PrimaryPhone != nil {
		s.PrimaryPhone = *in.PrimaryPhone
	}
	if in.ConfirmationNumber != nil {
		s.ConfirmationNumber = *in.ConfirmationNumber
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
	if in.CampaignType != nil {
		s.CampaignType = *in.CampaignType
	}
	if in.PlanName != nil {
		s.PlanName = *in.PlanName
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
	if in.CheckingAccountNumber != nil {
		s.CheckingAccountNumber = *in.CheckingAccountNumber
	}
	if in.RoutingNumber != nil {
		s.RoutingNumber = *in.RoutingNumber
	}
	if in.AlternativePhone != nil {
		s.AlternativePhone = *in.AlternativePhone
	}
	if in.VINNumber != nil {
		s.VINNumber = *in.VINNumber
	}
	if in.VehicleMileage != nil {
		s.VehicleMileage = *in.VehicleMileage
	}
	if in.VehicleModel != nil {
		s.VehicleModel = *in.VehicleModel
	}
	if in.FronterName != nil {
		s.FronterName = *in.FronterName
	}
	if in.CloserName != nil {
		s.CloserName = *in.CloserName
	}
}

func autoSaleToResponse(s *entity.AutoSale) dto.AutoSaleResponse {
	resp := dto.AutoSaleResponse{
		ID:                    s.ID,
		Campaign:              s.Campaign,
		DateOfSale:            s.DateOfSale,
		CustomerName:          s.CustomerName,
		PrimaryPhone:          s.PrimaryPhone,
		ConfirmationNumber:    s.ConfirmationNumber,
		Address:               s.Address,
		Email:                 s.Email,
		AgentName:             s.AgentName,
		ActivationFee:         s.ActivationFee,
		PaymentMode:           s.PaymentMode,
		CampaignType:          s.CampaignType,
		PlanName:              s.PlanName,
		BankName:              s.BankName,
		ChequeOrCardNumber:    s.ChequeOrCardNumber,
		CVV:                   s.CVV,
		ExpiryDate:            s.ExpiryDate,
		CheckingAccountNumber: s.CheckingAccountNumber,
		RoutingNumber:         s.RoutingNumber,
		AlternativePhone:      s.AlternativePhone,
		VINNumber:             s.VINNumber,
		VehicleMileage:        s.VehicleMileage,
		VehicleModel:          s.VehicleModel,
		FronterName:           s.FronterName,
		CloserName:            s.CloserName,
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
