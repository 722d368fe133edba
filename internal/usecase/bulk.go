package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// BulkUpdateLeadsUseCase applies one set of field updates to many leads,
// reporting per-item failures instead of failing the batch.
type BulkUpdateLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewBulkUpdateLeadsUseCase(leadRepo entity.LeadRepositoryInterface) *BulkUpdateLeadsUseCase {
	return &BulkUpdateLeadsUseCase{LeadRepo: leadRepo}
}

func (uc *BulkUpdateLeadsUseCase) Execute(ctx context.Context, input BulkUpdateInput) (*BulkUpdateOutput, error) {
	if len(input.LeadIDs) == 0 {
		return nil, NewInputError("lead_ids is required")
	}
	if input.Updates.Price != nil && *input.Updates.Price <= 0 {
		return nil, NewInputError("price must be positive")
	}

	out := &BulkUpdateOutput{TotalProcessed: len(input.LeadIDs)}

	for _, id := range input.LeadIDs {
		lead, err := uc.LeadRepo.FindByID(ctx, id)
		if err != nil {
			out.Failed = append(out.Failed, BulkItemFailure{LeadID: id, Reason: failureReason(err)})
			continue
		}

		if input.Updates.Price != nil {
			lead.Price = *input.Updates.Price
		}
		if input.Updates.Industry != nil {
			lead.Industry = *input.Updates.Industry
		}
		if input.Updates.Tags != nil {
			lead.Tags = input.Updates.Tags
		}
		if input.Updates.ListingStatus != nil {
			lead.ListingStatus = *input.Updates.ListingStatus
		}

		if err := uc.LeadRepo.Update(ctx, lead); err != nil {
			out.Failed = append(out.Failed, BulkItemFailure{LeadID: id, Reason: failureReason(err)})
			continue
		}
		out.UpdatedCount++
	}

	return out, nil
}

// BulkImportLeadsUseCase feeds normalized rows through the single-lead
// ingestion path, one row at a time.
type BulkImportLeadsUseCase struct {
	CreateLead *CreateLeadUseCase
}

func NewBulkImportLeadsUseCase(createLead *CreateLeadUseCase) *BulkImportLeadsUseCase {
	return &BulkImportLeadsUseCase{CreateLead: createLead}
}

func (uc *BulkImportLeadsUseCase) Execute(ctx context.Context, input BulkImportInput) (*BulkImportOutput, error) {
	if input.VendorID == "" {
		return nil, NewInputError("vendor_id is required")
	}

	out := &BulkImportOutput{TotalRows: len(input.Rows)}

	for i, row := range input.Rows {
		_, err := uc.CreateLead.Execute(ctx, CreateLeadInput{VendorID: input.VendorID, Lead: row})
		if err != nil {
			out.Failed = append(out.Failed, BulkItemFailure{Row: i + 1, Reason: failureReason(err)})
			continue
		}
		out.ImportedCount++
	}

	return out, nil
}

func failureReason(err error) string {
	if errors.Is(err, entity.ErrLeadNotFound) {
		return "Lead not found"
	}
	return err.Error()
}

// PipelineSummaryUseCase reports counts by listing status and score band
// plus the total value currently listed.
type PipelineSummaryUseCase struct {
	StatsRepo LeadStatsRepositoryInterface
}

func NewPipelineSummaryUseCase(statsRepo LeadStatsRepositoryInterface) *PipelineSummaryUseCase {
	return &PipelineSummaryUseCase{StatsRepo: statsRepo}
}

func (uc *PipelineSummaryUseCase) Execute(ctx context.Context, vendorID string) (*PipelineSummary, error) {
	summary, err := uc.StatsRepo.PipelineSummary(ctx, vendorID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}
	return summary, nil
}
