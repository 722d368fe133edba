package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type ValidationRecordRepository struct {
	DB *sql.DB
}

func NewValidationRecordRepository(db *sql.DB) *ValidationRecordRepository {
	return &ValidationRecordRepository{DB: db}
}

func (r *ValidationRecordRepository) Create(ctx context.Context, record *entity.ValidationRecord) error {
	details, err := json.Marshal(record.Details)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lead_validations (id, lead_id, validation_type, score, details, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.LeadID,
		record.ValidationType,
		record.Score,
		details,
		record.Notes,
		record.CreatedAt,
	)
	if err != nil {
		log.Printf("validation record insert failed: %v", err)
	}
	return err
}

func (r *ValidationRecordRepository) ListByLeadID(ctx context.Context, leadID string) ([]*entity.ValidationRecord, error) {
	query := `
		SELECT id, lead_id, validation_type, score, details, notes, created_at
		FROM lead_validations
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.ValidationRecord
	for rows.Next() {
		var rec entity.ValidationRecord
		var details []byte
		if err := rows.Scan(&rec.ID, &rec.LeadID, &rec.ValidationType, &rec.Score, &details, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &rec.Details); err != nil {
				return nil, err
			}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
