package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadAlreadyExists = errors.New("lead with this email already exists for the vendor")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidTransition = errors.New("approval transition not allowed")
	ErrLeadNotAdmissible = errors.New("lead does not meet the admission threshold")
)

type ValidationStatus string

const (
	ValidationPending     ValidationStatus = "pending"
	ValidationValidated   ValidationStatus = "validated"
	ValidationNeedsReview ValidationStatus = "needs_review"
	ValidationRejected    ValidationStatus = "rejected"
)

type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "pending"
	ApprovalUnderReview ApprovalStatus = "under_review"
	ApprovalApproved    ApprovalStatus = "approved"
	ApprovalRejected    ApprovalStatus = "rejected"
)

// ListingStatus is the marketplace lifecycle, kept orthogonal to approval.
type ListingStatus string

const (
	ListingDraft     ListingStatus = "draft"
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
	ListingExpired   ListingStatus = "expired"
)

type Lead struct {
	ID          string   `json:"id"`
	VendorID    string   `json:"vendor_id"`
	Title       string   `json:"title"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	JobTitle    string   `json:"job_title,omitempty"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Industry    string   `json:"industry"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags,omitempty"`

	// LeadScore is recomputed from the fields on demand, never authoritative.
	LeadScore        float64          `json:"lead_score"`
	ValidationScore  float64          `json:"validation_score"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	ApprovalStatus   ApprovalStatus   `json:"approval_status"`
	ListingStatus    ListingStatus    `json:"listing_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeadFilter struct {
	VendorID       string
	Industry       string
	MinPrice       *float64
	MaxPrice       *float64
	ApprovalStatus ApprovalStatus
	ListingStatus  ListingStatus
	Limit          int
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindByVendorAndEmail(ctx context.Context, vendorID, email string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	DeleteMany(ctx context.Context, ids []string) (int, error)
}

func NewLead(vendorID, title, fullName, email, companyName, industry string, price float64) (*Lead, error) {
	lead := &Lead{
		ID:               uuid.New().String(),
		VendorID:         vendorID,
		Title:            title,
		FullName:         fullName,
		Email:            strings.ToLower(strings.TrimSpace(email)),
		CompanyName:      companyName,
		Industry:         industry,
		Price:            price,
		ValidationStatus: ValidationPending,
		ApprovalStatus:   ApprovalPending,
		ListingStatus:    ListingDraft,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.VendorID == "" {
		return errors.New("vendor_id is required")
	}
	if l.Title == "" {
		return errors.New("title is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Industry == "" {
		return errors.New("industry is required")
	}
	if l.Price <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

// CanTransitionTo reports whether the approval workflow allows moving to next.
// Rejected leads may re-enter review on resubmission.
func (l *Lead) CanTransitionTo(next ApprovalStatus) bool {
	switch l.ApprovalStatus {
	case ApprovalPending:
		return next == ApprovalUnderReview || next == ApprovalApproved || next == ApprovalRejected
	case ApprovalUnderReview:
		return next == ApprovalApproved || next == ApprovalRejected
	case ApprovalRejected:
		return next == ApprovalUnderReview
	default:
		return false
	}
}
