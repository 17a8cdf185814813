package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

func newHistoryFixture() (*usecase.SaleHistoryUseCase, *fakeHistoryRepo) {
	histories := &fakeHistoryRepo{}
	return usecase.NewSaleHistoryUseCase(histories), histories
}

func qaActor() *dto.Actor {
	return &dto.Actor{ID: "qa-1", Name: "Quinn QA", Email: "quinn@intertech.com", Role: entity.RoleQAAgent, IsActive: true}
}

func TestGetHistory(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs,
		&entity.SaleHistory{ID: "h-1", SaleID: "sale-1", Status: entity.StatusApproved},
		&entity.SaleHistory{ID: "h-2", LeadID: "lead-1", Status: entity.StatusPending},
	)

	resp, err := uc.GetHistory(context.Background(), "sale-1")
	require.NoError(t, err)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "h-1", resp.History[0].ID)
	assert.Equal(t, "sale-1", resp.History[0].Sale)
}

func TestGetHistory_UnknownIDIsEmptyList(t *testing.T) {
	uc, _ := newHistoryFixture()
	resp, err := uc.GetHistory(context.Background(), "no-such-record")
	require.NoError(t, err)
	assert.NotNil(t, resp.History)
	assert.Empty(t, resp.History)
}

func TestGetHistory_EmptyID(t *testing.T) {
	uc, _ := newHistoryFixture()
	_, err := uc.GetHistory(context.Background(), "")
	var badReq *domain.BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Id is required!", badReq.Msg)
}

func TestCreateWithDetails_StampsServerFields(t *testing.T) {
	uc, histories := newHistoryFixture()
	actor := qaActor()

	resp, err := uc.CreateWithDetails(context.Background(), actor, "203.0.113.9", dto.CreateHistoryRequest{
		Sale: "sale-1",
		History: []dto.HistoryEntryRequest{
			{Action: "Initial Review", Status: entity.StatusUnderReview, QualityScore: 7},
		},
		Comments: []dto.CommentEntryRequest{
			{Comment: "checking payment details"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sale history record created successfully", resp.Msg)

	require.Len(t, histories.docs, 1)
	doc := histories.docs[0]
	assert.Equal(t, "sale-1", doc.SaleID)
	assert.Equal(t, entity.StatusUnderReview, doc.Status, "status tracks the last history entry")
	assert.True(t, strings.HasPrefix(doc.Identifier, "SALE-"), "identifier defaults when omitted")

	require.Len(t, doc.History, 1)
	e := doc.History[0]
	assert.Equal(t, "203.0.113.9", e.IPAddress)
	assert.Equal(t, actor.ID, e.ActionBy.ID)
	assert.Equal(t, actor.Email, e.ActionBy.Email)
	assert.False(t, e.Timestamp.IsZero())

	require.Len(t, doc.Comments, 1)
	assert.Equal(t, actor.ID, doc.Comments[0].ActionBy.ID)
}

func TestCreateWithDetails_HonorsClientTimestampAndIdentifier(t *testing.T) {
	uc, histories := newHistoryFixture()
	when := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	_, err := uc.CreateWithDetails(context.Background(), qaActor(), "203.0.113.9", dto.CreateHistoryRequest{
		Lead:       "lead-1",
		Identifier: "LEAD-42",
		History: []dto.HistoryEntryRequest{
			{Action: "Callback", Status: entity.StatusEscalated, Timestamp: &dto.Date{Time: when}},
		},
	})
	require.NoError(t, err)
	doc := histories.docs[0]
	assert.Equal(t, "LEAD-42", doc.Identifier)
	assert.True(t, doc.History[0].Timestamp.Equal(when))
}

func TestCreateWithDetails_EmptyBatchStaysPending(t *testing.T) {
	uc, histories := newHistoryFixture()
	_, err := uc.CreateWithDetails(context.Background(), qaActor(), "", dto.CreateHistoryRequest{Sale: "sale-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, histories.docs[0].Status)
}

func TestCreateWithDetails_ValidatesWholeBatch(t *testing.T) {
	uc, histories := newHistoryFixture()

	_, err := uc.CreateWithDetails(context.Background(), qaActor(), "", dto.CreateHistoryRequest{
		Sale: "sale-1",
		History: []dto.HistoryEntryRequest{
			{Action: "Score", Status: entity.StatusApproved, QualityScore: 11},
			{Action: "", Status: entity.StatusRejected},
		},
		Comments: []dto.CommentEntryRequest{{Comment: "ok"}},
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("qualityScore"))
	assert.True(t, verr.Has("action"))
	assert.True(t, verr.Has("rejectionReason"))
	assert.True(t, verr.Has("comment"))
	assert.Empty(t, histories.docs, "nothing stored when any entry fails")
}

func TestAddComment(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs, &entity.SaleHistory{ID: "h-1", SaleID: "sale-1", Status: entity.StatusPending})

	resp, err := uc.AddComment(context.Background(), qaActor(), "h-1", "203.0.113.9", dto.AddCommentRequest{
		Comment: "needs the routing number rechecked",
	})
	require.NoError(t, err)
	assert.Equal(t, "Comment added successfully", resp.Msg)
	require.Len(t, histories.docs[0].Comments, 1)
	assert.Equal(t, "qa-1", histories.docs[0].Comments[0].ActionBy.ID)
	assert.Equal(t, entity.StatusPending, histories.docs[0].Status, "comments never move the status")
}

func TestAddComment_UnknownDocument(t *testing.T) {
	uc, _ := newHistoryFixture()
	_, err := uc.AddComment(context.Background(), qaActor(), "nope", "", dto.AddCommentRequest{Comment: "long enough comment"})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Sale not found", notFound.Error())
}

func TestAddComment_TooShort(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs, &entity.SaleHistory{ID: "h-1", Status: entity.StatusPending})

	_, err := uc.AddComment(context.Background(), qaActor(), "h-1", "", dto.AddCommentRequest{Comment: "ok"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("comment"))
}

func TestUpdateStatus(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs, &entity.SaleHistory{ID: "h-1", SaleID: "sale-1", Status: entity.StatusUnderReview})

	resp, err := uc.UpdateStatus(context.Background(), qaActor(), "h-1", "203.0.113.9", dto.UpdateStatusRequest{
		Status: entity.StatusApproved,
		Reason: "all payment details verified",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sale status updated successfully", resp.Msg)

	doc := histories.docs[0]
	assert.Equal(t, entity.StatusApproved, doc.Status, "denormalized status moves with the appended entry")
	require.Len(t, doc.History, 1)
	assert.Equal(t, "Status Updated", doc.History[0].Action)
	assert.Equal(t, "qa-1", doc.History[0].ActionBy.ID)
}

func TestUpdateStatus_ShortReason(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs, &entity.SaleHistory{ID: "h-1", Status: entity.StatusUnderReview})

	_, err := uc.UpdateStatus(context.Background(), qaActor(), "h-1", "", dto.UpdateStatusRequest{
		Status: entity.StatusApproved,
		Reason: "short",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "Reason must be at least 10 characters")
	assert.Equal(t, entity.StatusUnderReview, histories.docs[0].Status)
}

func TestUpdateStatus_RejectionNeedsReason(t *testing.T) {
	uc, histories := newHistoryFixture()
	histories.docs = append(histories.docs, &entity.SaleHistory{ID: "h-1", Status: entity.StatusUnderReview})

	_, err := uc.UpdateStatus(context.Background(), qaActor(), "h-1", "", dto.UpdateStatusRequest{
		Status: entity.StatusRejected,
		Reason: "missing confirmation data",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("rejectionReason"))
}

func TestUpdateStatus_UnknownDocument(t *testing.T) {
	uc, _ := newHistoryFixture()
	_, err := uc.UpdateStatus(context.Background(), qaActor(), "nope", "", dto.UpdateStatusRequest{
		Status: entity.StatusApproved,
		Reason: "all payment details verified",
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Sale not found", notFound.Error())
}
