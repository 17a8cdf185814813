package entity

import (
	"time"

	"github.com/intertech/sales-automation-api/internal/domain"
)

// Review statuses. pending is the implicit initial state when a record has
// no history yet; the remaining states transition freely among themselves.
const (
	StatusPending          = "pending"
	StatusUnderReview      = "under_review"
	StatusApproved         = "approved"
	StatusRejected         = "rejected"
	StatusRequiresRevision = "requires_revision"
	StatusEscalated        = "escalated"
)

// ReviewStatuses all accepted status values.
var ReviewStatuses = []string{
	StatusPending, StatusUnderReview, StatusApproved,
	StatusRejected, StatusRequiresRevision, StatusEscalated,
}

// IsValidStatus reports whether s is an accepted review status.
func IsValidStatus(s string) bool {
	return contains(ReviewStatuses, s)
}

// ActorSnapshot is the acting user's identity captured at write time.
// Deliberately not a foreign key: the trail must survive later changes to
// the user record.
type ActorSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SystemData browser/device info reported by the client.
type SystemData struct {
	Browser string `json:"browser,omitempty"`
	Device  string `json:"device,omitempty"`
}

// HistoryEntry one append-only review action. QualityScore is bounded 0-10;
// RejectionReason is mandatory iff Status is rejected.
type HistoryEntry struct {
	Action          string        `json:"action"`
	Status          string        `json:"status"`
	Reason          string        `json:"reason,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	NextAction      string        `json:"nextAction,omitempty"`
	QualityScore    int           `json:"qualityScore"`
	Timestamp       time.Time     `json:"timestamp"`
	IPAddress       string        `json:"ipAddress,omitempty"`
	SystemData      SystemData    `json:"systemData"`
	ActionBy        ActorSnapshot `json:"actionBy"`
}

// CommentEntry one append-only reviewer comment.
type CommentEntry struct {
	Comment    string        `json:"comment"`
	Timestamp  time.Time     `json:"timestamp"`
	IPAddress  string        `json:"ipAddress,omitempty"`
	SystemData SystemData    `json:"systemData"`
	ActionBy   ActorSnapshot `json:"actionBy"`
}

// SaleHistory is the audit-trail document for exactly one of Sale, AutoSale
// or Lead (one reference set per document; the schema does not enforce
// mutual exclusivity). History and Comments are append-only; Status is the
// denormalized status of the most recently appended history entry.
type SaleHistory struct {
	ID         string
	Identifier string
	SaleID     string // at most one of SaleID / AutoSaleID / LeadID is set
	AutoSaleID string
	LeadID     string
	Status     string
	History    []HistoryEntry
	Comments   []CommentEntry
}

// AppendHistory appends one entry and keeps the denormalized Status in sync
// with the latest entry. This is the only mutation path for History.
func (h *SaleHistory) AppendHistory(e HistoryEntry) {
	h.History = append(h.History, e)
	h.Status = e.Status
}

// AppendComment appends one comment. Comments never affect Status.
func (h *SaleHistory) AppendComment(c CommentEntry) {
	h.Comments = append(h.Comments, c)
}

// ValidateHistoryEntry checks one history entry: status enum, quality-score
// bounds and the rejection-reason rule. Failures accumulate on v.
func ValidateHistoryEntry(v *domain.ValidationError, e HistoryEntry) {
	if e.Action == "" {
		v.Add("action", "Action is required")
	}
	switch {
	case e.Status == "":
		v.Add("status", "Status is required")
	case !IsValidStatus(e.Status):
		v.Add("status", "Invalid status value")
	}
	if e.QualityScore < 0 || e.QualityScore > 10 {
		v.Add("qualityScore", "Quality score must be between 0 and 10")
	}
	if e.Status == StatusRejected && len(e.RejectionReason) < 3 {
		v.Add("rejectionReason", "Rejection reason is required when status is rejected")
	}
}

// ValidateCommentEntry checks one comment entry.
func ValidateCommentEntry(v *domain.ValidationError, c CommentEntry) {
	if len(c.Comment) < 5 {
		v.Add("comment", "Comment must be at least 5 characters")
	}
}
