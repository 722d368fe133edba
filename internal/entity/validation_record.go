package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ValidationRecord is an immutable audit row, one per validation run.
type ValidationRecord struct {
	ID             string            `json:"id"`
	LeadID         string            `json:"lead_id"`
	ValidationType string            `json:"validation_type"` // automated, manual
	Score          float64           `json:"score"`
	Details        map[string]string `json:"details"`
	Notes          string            `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
}

type ValidationRecordRepositoryInterface interface {
	Create(ctx context.Context, record *ValidationRecord) error
	ListByLeadID(ctx context.Context, leadID string) ([]*ValidationRecord, error)
}

func NewValidationRecord(leadID, validationType string, score float64, details map[string]string, notes string) *ValidationRecord {
	return &ValidationRecord{
		ID:             uuid.New().String(),
		LeadID:         leadID,
		ValidationType: validationType,
		Score:          score,
		Details:        details,
		Notes:          notes,
		CreatedAt:      time.Now(),
	}
}
