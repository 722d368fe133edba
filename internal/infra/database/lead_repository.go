package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/xavierca1/leadmarket/internal/entity"
	"github.com/xavierca1/leadmarket/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, vendor_id, title, full_name, email, phone, job_title,
	company_name, location, domain, industry, description, price, tags,
	lead_score, validation_score, validation_status, approval_status,
	listing_status, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.VendorID,
		lead.Title,
		lead.FullName,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.JobTitle),
		lead.CompanyName,
		nullString(lead.Location),
		nullString(lead.Domain),
		lead.Industry,
		nullString(lead.Description),
		lead.Price,
		pq.Array(lead.Tags),
		lead.LeadScore,
		lead.ValidationScore,
		string(lead.ValidationStatus),
		string(lead.ApprovalStatus),
		string(lead.ListingStatus),
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrLeadAlreadyExists
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrInvalidLeadID
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) FindByVendorAndEmail(ctx context.Context, vendorID, email string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE vendor_id = $1 AND LOWER(email) = LOWER($2)`
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, vendorID, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.VendorID != "" {
		conditions = append(conditions, "vendor_id = "+arg(filter.VendorID))
	}
	if filter.Industry != "" {
		conditions = append(conditions, "industry ILIKE "+arg("%"+filter.Industry+"%"))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price <= "+arg(*filter.MaxPrice))
	}
	if filter.ApprovalStatus != "" {
		conditions = append(conditions, "approval_status = "+arg(string(filter.ApprovalStatus)))
	}
	if filter.ListingStatus != "" {
		conditions = append(conditions, "listing_status = "+arg(string(filter.ListingStatus)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			title = $2, full_name = $3, email = $4, phone = $5, job_title = $6,
			company_name = $7, location = $8, domain = $9, industry = $10,
			description = $11, price = $12, tags = $13, lead_score = $14,
			validation_score = $15, validation_status = $16,
			approval_status = $17, listing_status = $18, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Title,
		lead.FullName,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.JobTitle),
		lead.CompanyName,
		nullString(lead.Location),
		nullString(lead.Domain),
		lead.Industry,
		nullString(lead.Description),
		lead.Price,
		pq.Array(lead.Tags),
		lead.LeadScore,
		lead.ValidationScore,
		string(lead.ValidationStatus),
		string(lead.ApprovalStatus),
		string(lead.ListingStatus),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// DeleteMany removes the given leads in a single transaction. Ids that do
// not exist simply do not count; the caller reads the returned total.
func (r *LeadRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(affected), nil
}

// PipelineSummary aggregates counts by listing status and score band plus
// the total value currently listed. Bands follow hot >= 80, warm >= 60,
// cold >= 40, dead below.
func (r *LeadRepository) PipelineSummary(ctx context.Context, vendorID string) (*usecase.PipelineSummary, error) {
	query := `
		SELECT listing_status, lead_score, price FROM leads
	`
	var args []interface{}
	if vendorID != "" {
		query += ` WHERE vendor_id = $1`
		args = append(args, vendorID)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &usecase.PipelineSummary{
		StatusCounts: map[string]int{},
		ScoreBands:   map[string]int{"hot": 0, "warm": 0, "cold": 0, "dead": 0},
	}

	for rows.Next() {
		var status string
		var score, price float64
		if err := rows.Scan(&status, &score, &price); err != nil {
			return nil, err
		}

		summary.TotalLeads++
		summary.StatusCounts[status]++
		if status == string(entity.ListingAvailable) {
			summary.TotalAvailableValue += price
		}

		switch {
		case score >= 80:
			summary.ScoreBands["hot"]++
		case score >= 60:
			summary.ScoreBands["warm"]++
		case score >= 40:
			summary.ScoreBands["cold"]++
		default:
			summary.ScoreBands["dead"]++
		}
	}

	return summary, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var phone, jobTitle, location, domain, description sql.NullString
	var validationStatus, approvalStatus, listingStatus string

	err := row.Scan(
		&lead.ID,
		&lead.VendorID,
		&lead.Title,
		&lead.FullName,
		&lead.Email,
		&phone,
		&jobTitle,
		&lead.CompanyName,
		&location,
		&domain,
		&lead.Industry,
		&description,
		&lead.Price,
		pq.Array(&lead.Tags),
		&lead.LeadScore,
		&lead.ValidationScore,
		&validationStatus,
		&approvalStatus,
		&listingStatus,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Phone = phone.String
	lead.JobTitle = jobTitle.String
	lead.Location = location.String
	lead.Domain = domain.String
	lead.Description = description.String
	lead.ValidationStatus = entity.ValidationStatus(validationStatus)
	lead.ApprovalStatus = entity.ApprovalStatus(approvalStatus)
	lead.ListingStatus = entity.ListingStatus(listingStatus)

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
