package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApprovalRecord is an immutable audit row, one per approval transition.
type ApprovalRecord struct {
	ID         string         `json:"id"`
	LeadID     string         `json:"lead_id"`
	ApproverID string         `json:"approver_id"`
	Status     ApprovalStatus `json:"status"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ApprovalRecordRepositoryInterface interface {
	Create(ctx context.Context, record *ApprovalRecord) error
	ListByLeadID(ctx context.Context, leadID string) ([]*ApprovalRecord, error)
}

func NewApprovalRecord(leadID, approverID string, status ApprovalStatus, notes string) *ApprovalRecord {
	return &ApprovalRecord{
		ID:         uuid.New().String(),
		LeadID:     leadID,
		ApproverID: approverID,
		Status:     status,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
}
