package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

func historyEntry(status string) entity.HistoryEntry {
	return entity.HistoryEntry{
		Action:    "Reviewed",
		Status:    status,
		Timestamp: time.Now(),
	}
}

// The document status must always track the last appended history entry.
func TestAppendHistory_SyncsStatus(t *testing.T) {
	doc := &entity.SaleHistory{ID: "h-1", Status: entity.StatusPending}

	doc.AppendHistory(historyEntry(entity.StatusUnderReview))
	assert.Equal(t, entity.StatusUnderReview, doc.Status)

	doc.AppendHistory(historyEntry(entity.StatusApproved))
	assert.Equal(t, entity.StatusApproved, doc.Status)
	assert.Len(t, doc.History, 2)
}

func TestAppendComment_DoesNotTouchStatus(t *testing.T) {
	doc := &entity.SaleHistory{ID: "h-1", Status: entity.StatusApproved}
	doc.AppendComment(entity.CommentEntry{Comment: "looks complete"})
	assert.Equal(t, entity.StatusApproved, doc.Status)
	assert.Len(t, doc.Comments, 1)
}

func TestValidateHistoryEntry_RequiredFields(t *testing.T) {
	v := &domain.ValidationError{}
	entity.ValidateHistoryEntry(v, entity.HistoryEntry{})
	assert.True(t, v.Has("action"))
	assert.True(t, v.Has("status"))

	v = &domain.ValidationError{}
	entity.ValidateHistoryEntry(v, historyEntry("archived"))
	assert.True(t, v.Has("status"))
	assert.Contains(t, v.Error(), "Invalid status value")
}

func TestValidateHistoryEntry_QualityScoreBounds(t *testing.T) {
	for _, score := range []int{0, 5, 10} {
		v := &domain.ValidationError{}
		e := historyEntry(entity.StatusApproved)
		e.QualityScore = score
		entity.ValidateHistoryEntry(v, e)
		assert.NoError(t, v.OrNil(), "score %d is within bounds", score)
	}
	for _, score := range []int{-1, 11} {
		v := &domain.ValidationError{}
		e := historyEntry(entity.StatusApproved)
		e.QualityScore = score
		entity.ValidateHistoryEntry(v, e)
		assert.Contains(t, v.Error(), "Quality score must be between 0 and 10")
	}
}

func TestValidateHistoryEntry_RejectionNeedsReason(t *testing.T) {
	v := &domain.ValidationError{}
	entity.ValidateHistoryEntry(v, historyEntry(entity.StatusRejected))
	assert.True(t, v.Has("rejectionReason"))

	v = &domain.ValidationError{}
	e := historyEntry(entity.StatusRejected)
	e.RejectionReason = "missing confirmation number"
	entity.ValidateHistoryEntry(v, e)
	assert.NoError(t, v.OrNil())

	// Other statuses do not need a rejection reason.
	v = &domain.ValidationError{}
	entity.ValidateHistoryEntry(v, historyEntry(entity.StatusEscalated))
	assert.NoError(t, v.OrNil())
}

func TestValidateCommentEntry(t *testing.T) {
	v := &domain.ValidationError{}
	entity.ValidateCommentEntry(v, entity.CommentEntry{Comment: "ok"})
	assert.Contains(t, v.Error(), "Comment must be at least 5 characters")

	v = &domain.ValidationError{}
	entity.ValidateCommentEntry(v, entity.CommentEntry{Comment: "verified with the customer"})
	assert.NoError(t, v.OrNil())
}
