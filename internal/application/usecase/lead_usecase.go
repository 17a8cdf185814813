package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// LeadUseCase workflows for auto-warranty lead records.
type LeadUseCase struct {
	leads     repository.LeadRepository
	histories repository.SaleHistoryRepository
	tx        TxRunner
}

// NewLeadUseCase builds the use case.
func NewLeadUseCase(leads repository.LeadRepository, histories repository.SaleHistoryRepository, tx TxRunner) *LeadUseCase {
	return &LeadUseCase{leads: leads, histories: histories, tx: tx}
}

// Create stores a new lead owned by the acting agent.
func (uc *LeadUseCase) Create(ctx context.Context, actor *dto.Actor, in dto.CreateLeadRequest) (*dto.CreateLeadResponse, error) {
	lead := &entity.Lead{
		ID:               uuid.New().String(),
		DateOfSale:       in.DateOfSale.Time,
		CustomerName:     in.CustomerName,
		PrimaryPhone:     in.PrimaryPhone,
		ExtendedWarranty: in.ExtendedWarranty,
		VehicleMileage:   in.VehicleMileage,
		CustomerAgreedForTransferToSeniorRepresentative: in.CustomerAgreedForTransferToSeniorRepresentative,
		Address:                 in.Address,
		Email:                   in.Email,
		AgentName:               in.AgentName,
		VehicleMakeModelVariant: in.VehicleMakeModelVariant,
		DialerName:              in.DialerName,
		AgentID:                 actor.ID,
		CreatedAt:               time.Now(),
	}
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	if err := uc.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return &dto.CreateLeadResponse{Msg: "Lead created successfully", Lead: leadToResponse(lead)}, nil
}

// List returns every lead newest first with agents expanded and
// audit-trail documents attached.
func (uc *LeadUseCase) List(ctx context.Context) (*dto.LeadListResponse, error) {
	leads, err := uc.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.attachHistories(ctx, leads); err != nil {
		return nil, err
	}

	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, leadToResponse(l))
	}
	return &dto.LeadListResponse{Leads: out, Count: len(out)}, nil
}

// Update applies a partial update and revalidates the whole record.
func (uc *LeadUseCase) Update(ctx context.Context, id string, in dto.UpdateLeadRequest) (*dto.CreateLeadResponse, error) {
	lead, err := uc.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.NewNotFound(id)
	}

	applyLeadUpdates(lead, in)
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	if err := uc.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return &dto.CreateLeadResponse{Msg: "Lead updated successfully", Lead: leadToResponse(lead)}, nil
}

// Delete removes the lead and its audit-trail documents in one
// transaction.
func (uc *LeadUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(
		_ repository.SaleRepository,
		_ repository.AutoSaleRepository,
		leads repository.LeadRepository,
		histories repository.SaleHistoryRepository,
	) error {
		lead, err := leads.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.NewNotFound(id)
		}
		if err := histories.DeleteByEntity(ctx, id); err != nil {
			return err
		}
		return leads.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Lead deleted successfully"}, nil
}

func (uc *LeadUseCase) attachHistories(ctx context.Context, leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
	}
	byEntity, err := uc.histories.FindByEntityIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, l := range leads {
		l.Histories = byEntity[l.ID]
	}
	return nil
}

func applyLeadUpdates(l *entity.Lead, in dto.UpdateLeadRequest) {
	if in.DateOfSale != nil {
		l.DateOfSale = in.DateOfSale.Time
	}
	if in.CustomerName != nil {
		l.CustomerName = *in.CustomerName
	}
	if in.PrimaryPhone != nil {
		l.PrimaryPhone = *in.PrimaryPhone
	}
	if in.ExtendedWarranty != nil {
		l.ExtendedWarranty = *in.ExtendedWarranty
	}
	if in.VehicleMileage != nil {
		l.VehicleMileage = *in.VehicleMileage
	}
	if in.CustomerAgreedForTransferToSeniorRepresentative != nil {
		l.CustomerAgreedForTransferToSeniorRepresentative = *in.CustomerAgreedForTransferToSeniorRepresentative
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.Email != nil {
		l.Email = *in.Email
	}
	if in.AgentName != nil {
		l.AgentName = *in.AgentName
	}
	if in.VehicleMakeModelVariant != nil {
		l.VehicleMakeModelVariant = *in.VehicleMakeModelVariant
	}
	if in.DialerName != nil {
		l.DialerName = *in.DialerName
	}
}

func leadToResponse(l *entity.Lead) dto.LeadResponse {
	resp := dto.LeadResponse{
		ID:               l.ID,
		DateOfSale:       l.DateOfSale,
		CustomerName:     l.CustomerName,
		PrimaryPhone:     l.PrimaryPhone,
		ExtendedWarranty: l.ExtendedWarranty,
		VehicleMileage:   l.VehicleMileage,
		CustomerAgreedForTransferToSeniorRepresentative: l.CustomerAgreedForTransferToSeniorRepresentative,
		Address:                 l.Address,
		Email:                   l.Email,
		AgentName:               l.AgentName,
		VehicleMakeModelVariant: l.VehicleMakeModelVariant,
		DialerName:              l.DialerName,
		CreatedAt:               l.CreatedAt,
	}
	if l.Agent != nil {
		resp.Agent = &dto.AgentRef{ID: l.Agent.ID, Name: l.Agent.Name, Email: l.Agent.Email}
	}
	for _, h := range l.Histories {
		resp.History = append(resp.History, dto.FromHistoryEntity(h))
	}
	return resp
}
