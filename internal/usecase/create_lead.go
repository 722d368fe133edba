package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// CreateLeadUseCase ingests one normalized raw record: field validation,
// scoring, duplicate admission check, then lead + audit row persisted as one
// unit with compensation.
type CreateLeadUseCase struct {
	LeadRepo       entity.LeadRepositoryInterface
	ValidationRepo entity.ValidationRecordRepositoryInterface
	Validator      *LeadValidator
	Scorer         *ScoringEngine
}

func NewCreateLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	validationRepo entity.ValidationRecordRepositoryInterface,
	validator *LeadValidator,
	scorer *ScoringEngine,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo:       leadRepo,
		ValidationRepo: validationRepo,
		Validator:      validator,
		Scorer:         scorer,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if input.VendorID == "" {
		return nil, NewInputError("vendor_id is required")
	}

	raw := input.Lead
	if raw.Title == "" || raw.Industry == "" || raw.Price == "" {
		return nil, NewInputError("title, industry and price are required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(raw.Price), 64)
	if err != nil || price <= 0 {
		return nil, NewInputError("price must be a positive number")
	}

	email := strings.ToLower(strings.TrimSpace(raw.Email))
	if email != "" {
		existing, err := uc.LeadRepo.FindByVendorAndEmail(ctx, input.VendorID, email)
		if err != nil && !errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
		}
		if existing != nil {
			return nil, &DomainError{Code: "DUPLICATE", Message: entity.ErrLeadAlreadyExists.Error()}
		}
	}

	lead, err := entity.NewLead(input.VendorID, raw.Title, raw.FullName, email, raw.CompanyName, raw.Industry, price)
	if err != nil {
		return nil, NewInputError(err.Error())
	}
	lead.Phone = raw.Phone
	lead.JobTitle = raw.JobTitle
	lead.Location = raw.Location
	lead.Domain = raw.Domain
	lead.Description = raw.Description
	lead.Tags = raw.Tags

	validation := uc.Validator.Validate(raw)
	scoreResult := uc.Scorer.Score(lead)

	lead.LeadScore = scoreResult.OverallScore
	lead.ValidationScore = validation.Score
	lead.ValidationStatus = validation.Status
	lead.ApprovalStatus = DeriveApprovalStatus(validation.Status, validation.Score)
	if lead.ApprovalStatus == entity.ApprovalApproved {
		lead.ListingStatus = entity.ListingAvailable
	}

	record := entity.NewValidationRecord(lead.ID, "automated", validation.Score, validation.Details, joinIssues(validation.Issues))

	tx := NewTransaction()
	tx.AddOperation("create lead", func(ctx context.Context) error {
		return uc.LeadRepo.Create(ctx, lead)
	})
	tx.AddCompensation("delete lead", func(ctx context.Context) error {
		_, err := uc.LeadRepo.DeleteMany(ctx, []string{lead.ID})
		return err
	})
	tx.AddOperation("create validation record", func(ctx context.Context) error {
		return uc.ValidationRepo.Create(ctx, record)
	})

	if err := tx.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrLeadAlreadyExists) {
			return nil, &DomainError{Code: "DUPLICATE", Message: entity.ErrLeadAlreadyExists.Error()}
		}
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	return &CreateLeadOutput{
		LeadID:             lead.ID,
		LeadScore:          scoreResult.OverallScore,
		QualityGrade:       scoreResult.QualityGrade,
		ValidationScore:    validation.Score,
		ValidationStatus:   validation.Status,
		ApprovalStatus:     lead.ApprovalStatus,
		ValidationRecordID: record.ID,
		Issues:             validation.Issues,
	}, nil
}

func joinIssues(issues []string) string {
	if len(issues) == 0 {
		return "Validation passed"
	}
	return strings.Join(issues, "; ")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
