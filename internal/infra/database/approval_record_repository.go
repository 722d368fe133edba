package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type ApprovalRecordRepository struct {
	DB *sql.DB
}

func NewApprovalRecordRepository(db *sql.DB) *ApprovalRecordRepository {
	return &ApprovalRecordRepository{DB: db}
}

func (r *ApprovalRecordRepository) Create(ctx context.Context, record *entity.ApprovalRecord) error {
	query := `
		INSERT INTO lead_approvals (id, lead_id, approver_id, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.LeadID,
		record.ApproverID,
		string(record.Status),
		record.Notes,
		record.CreatedAt,
	)
	if err != nil {
		log.Printf("approval record insert failed: %v", err)
	}
	return err
}

func (r *ApprovalRecordRepository) ListByLeadID(ctx context.Context, leadID string) ([]*entity.ApprovalRecord, error) {
	query := `
		SELECT id, lead_id, approver_id, status, notes, created_at
		FROM lead_approvals
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.ApprovalRecord
	for rows.Next() {
		var rec entity.ApprovalRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.LeadID, &rec.ApproverID, &status, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = entity.ApprovalStatus(status)
		records = append(records, &rec)
	}
	return records, rows.Err()
}
