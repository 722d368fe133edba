package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type VendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, email, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		v.ID,
		v.Name,
		v.Email,
		nullString(v.CompanyName),
		v.CreatedAt,
		v.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return errors.New("vendor email already registered")
	}
	return err
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `
		SELECT id, name, email, company_name, created_at, updated_at
		FROM vendors WHERE id = $1
	`

	var v entity.Vendor
	var companyName sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &companyName, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrVendorNotFound
	}
	if err != nil {
		return nil, err
	}

	v.CompanyName = companyName.String
	return &v, nil
}

// FindVendorEmail satisfies the notification worker's VendorFinder.
func (r *VendorRepository) FindVendorEmail(ctx context.Context, vendorID string) (string, string, error) {
	v, err := r.FindByID(ctx, vendorID)
	if err != nil {
		return "", "", err
	}
	return v.Email, v.Name, nil
}
