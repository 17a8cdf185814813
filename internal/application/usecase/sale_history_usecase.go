package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

// SaleHistoryUseCase workflows for the review audit trail shared by
// sales, auto sales and leads.
type SaleHistoryUseCase struct {
	histories repository.SaleHistoryRepository
}

// NewSaleHistoryUseCase builds the use case.
func NewSaleHistoryUseCase(histories repository.SaleHistoryRepository) *SaleHistoryUseCase {
	return &SaleHistoryUseCase{histories: histories}
}

// GetHistory returns every audit-trail document tracking the given record,
// whichever record type it is. Unknown ids yield an empty list, so the
// call is idempotent and safe to poll.
func (uc *SaleHistoryUseCase) GetHistory(ctx context.Context, entityID string) (*dto.HistoryListResponse, error) {
	if entityID == "" {
		return nil, domain.NewBadRequest("Id is required!")
	}
	docs, err := uc.histories.FindByEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleHistoryResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.FromHistoryEntity(d))
	}
	return &dto.HistoryListResponse{History: out}, nil
}

// CreateWithDetails creates a new audit-trail document from a batch of
// history entries and comments. Every entry is validated before anything
// is stored; actor identity, IP and missing timestamps are stamped
// server-side. The document status is the status of the last history
// entry, or pending when the batch has none.
func (uc *SaleHistoryUseCase) CreateWithDetails(ctx context.Context, actor *dto.Actor, ip string, in dto.CreateHistoryRequest) (*dto.MessageResponse, error) {
	now := time.Now()
	snapshot := actorSnapshot(actor)

	v := &domain.ValidationError{}
	doc := &entity.SaleHistory{
		ID:         uuid.New().String(),
		Identifier: in.Identifier,
		SaleID:     in.Sale,
		AutoSaleID: in.AutoSale,
		LeadID:     in.Lead,
		Status:     entity.StatusPending,
	}
	if doc.Identifier == "" {
		doc.Identifier = defaultIdentifier(now)
	}

	for _, h := range in.History {
		e := entity.HistoryEntry{
			Action:          h.Action,
			Status:          h.Status,
			Reason:          h.Reason,
			RejectionReason: h.RejectionReason,
			Notes:           h.Notes,
			NextAction:      h.NextAction,
			QualityScore:    h.QualityScore,
			Timestamp:       now,
			IPAddress:       ip,
			SystemData:      entity.SystemData{Browser: h.SystemData.Browser, Device: h.SystemData.Device},
			ActionBy:        snapshot,
		}
		if h.Timestamp != nil && !h.Timestamp.IsZero() {
			e.Timestamp = h.Timestamp.Time
		}
		entity.ValidateHistoryEntry(v, e)
		doc.AppendHistory(e)
	}
	for _, c := range in.Comments {
		e := entity.CommentEntry{
			Comment:    c.Comment,
			Timestamp:  now,
			IPAddress:  ip,
			SystemData: entity.SystemData{Browser: c.SystemData.Browser, Device: c.SystemData.Device},
			ActionBy:   snapshot,
		}
		if c.Timestamp != nil && !c.Timestamp.IsZero() {
			e.Timestamp = c.Timestamp.Time
		}
		entity.ValidateCommentEntry(v, e)
		doc.AppendComment(e)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := uc.histories.Create(ctx, doc); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Sale history record created successfully"}, nil
}

// AddComment appends one reviewer comment to an existing document,
// addressed by the document's own id.
func (uc *SaleHistoryUseCase) AddComment(ctx context.Context, actor *dto.Actor, documentID, ip string, in dto.AddCommentRequest) (*dto.MessageResponse, error) {
	doc, err := uc.histories.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NewNotFoundMsg("Sale not found")
	}

	entry := entity.CommentEntry{
		Comment:    in.Comment,
		Timestamp:  time.Now(),
		IPAddress:  ip,
		SystemData: entity.SystemData{Browser: in.SystemData.Browser, Device: in.SystemData.Device},
		ActionBy:   actorSnapshot(actor),
	}
	v := &domain.ValidationError{}
	entity.ValidateCommentEntry(v, entry)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := uc.histories.AppendComment(ctx, documentID, entry); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Comment added successfully"}, nil
}

// UpdateStatus appends a "Status Updated" history entry and moves the
// document's denormalized status in the same storage operation. The
// justification must carry enough detail to audit the change later.
func (uc *SaleHistoryUseCase) UpdateStatus(ctx context.Context, actor *dto.Actor, documentID, ip string, in dto.UpdateStatusRequest) (*dto.MessageResponse, error) {
	doc, err := uc.histories.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NewNotFoundMsg("Sale not found")
	}

	entry := entity.HistoryEntry{
		Action:          "Status Updated",
		Status:          in.Status,
		Reason:          in.Reason,
		RejectionReason: in.RejectionReason,
		Notes:           in.Notes,
		Timestamp:       time.Now(),
		IPAddress:       ip,
		SystemData:      entity.SystemData{Browser: in.SystemData.Browser, Device: in.SystemData.Device},
		ActionBy:        actorSnapshot(actor),
	}
	v := &domain.ValidationError{}
	entity.ValidateHistoryEntry(v, entry)
	if len(in.Reason) < 10 {
		v.Add("reason", "Reason must be at least 10 characters")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := uc.histories.AppendHistory(ctx, documentID, entry); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Msg: "Sale status updated successfully"}, nil
}

// defaultIdentifier builds the fallback document identifier used when the
// batch create omits one.
func defaultIdentifier(now time.Time) string {
	return "SALE-" + strconv.FormatInt(now.UnixMilli(), 10)
}

func actorSnapshot(a *dto.Actor) entity.ActorSnapshot {
	if a == nil {
		return entity.ActorSnapshot{}
	}
	return entity.ActorSnapshot{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
