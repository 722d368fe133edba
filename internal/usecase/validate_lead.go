package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// ValidateLeadUseCase re-runs the field rules against a stored lead, writes
// the immutable audit row and updates the lead's validation state.
type ValidateLeadUseCase struct {
	LeadRepo       entity.LeadRepositoryInterface
	ValidationRepo entity.ValidationRecordRepositoryInterface
	Validator      *LeadValidator
	Scorer         *ScoringEngine
}

func NewValidateLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	validationRepo entity.ValidationRecordRepositoryInterface,
	validator *LeadValidator,
	scorer *ScoringEngine,
) *ValidateLeadUseCase {
	return &ValidateLeadUseCase{
		LeadRepo:       leadRepo,
		ValidationRepo: validationRepo,
		Validator:      validator,
		Scorer:         scorer,
	}
}

func (uc *ValidateLeadUseCase) Execute(ctx context.Context, input ValidateLeadInput) (*ValidateLeadOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		if errors.Is(err, entity.ErrInvalidLeadID) {
			return nil, NewInputError("invalid lead id")
		}
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	result := uc.Validator.Validate(RawLeadFromEntity(lead))
	scoreResult := uc.Scorer.Score(lead)

	notes := input.Notes
	if notes == "" {
		notes = joinIssues(result.Issues)
	}
	record := entity.NewValidationRecord(lead.ID, "automated", result.Score, result.Details, notes)

	prevScore := lead.ValidationScore
	prevStatus := lead.ValidationStatus
	prevLeadScore := lead.LeadScore

	lead.LeadScore = scoreResult.OverallScore
	lead.ValidationScore = result.Score
	lead.ValidationStatus = result.Status

	tx := NewTransaction()
	tx.AddOperation("create validation record", func(ctx context.Context) error {
		return uc.ValidationRepo.Create(ctx, record)
	})
	tx.AddCompensation("restore lead validation state", func(ctx context.Context) error {
		lead.LeadScore = prevLeadScore
		lead.ValidationScore = prevScore
		lead.ValidationStatus = prevStatus
		return nil
	})
	tx.AddOperation("update lead", func(ctx context.Context) error {
		return uc.LeadRepo.Update(ctx, lead)
	})

	if err := tx.Execute(ctx); err != nil {
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	return &ValidateLeadOutput{
		LeadID:             lead.ID,
		Score:              result.Score,
		Status:             result.Status,
		Issues:             result.Issues,
		ValidationRecordID: record.ID,
	}, nil
}
