package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrVendorNotFound = errors.New("vendor not found")

// Vendor owns leads. Only the fields the engine needs to notify and
// attribute ownership live here; account management is out of scope.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VendorRepositoryInterface interface {
	Create(ctx context.Context, v *Vendor) error
	FindByID(ctx context.Context, id string) (*Vendor, error)
}

func NewVendor(name, email string) (*Vendor, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	return &Vendor{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}
