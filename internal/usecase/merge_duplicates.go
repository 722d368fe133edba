package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// MergeDuplicatesUseCase deletes a group of duplicates while keeping one
// record. No field reconciliation happens: the kept lead stays as-is.
type MergeDuplicatesUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewMergeDuplicatesUseCase(leadRepo entity.LeadRepositoryInterface) *MergeDuplicatesUseCase {
	return &MergeDuplicatesUseCase{LeadRepo: leadRepo}
}

// Execute validates the keep id, then deletes every duplicate id that parses,
// differs from the keep id and exists. Unparsable or absent ids are skipped
// silently; the caller reads the outcome from DeletedCount.
func (uc *MergeDuplicatesUseCase) Execute(ctx context.Context, input MergeDuplicatesInput) (*MergeDuplicatesOutput, error) {
	keepID, err := uuid.Parse(input.KeepLeadID)
	if err != nil {
		return nil, NewInputError("invalid lead id format")
	}

	if _, err := uc.LeadRepo.FindByID(ctx, keepID.String()); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead to keep not found")
		}
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	toDelete := make([]string, 0, len(input.DuplicateIDs))
	for _, raw := range input.DuplicateIDs {
		dupID, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if dupID == keepID {
			continue
		}
		toDelete = append(toDelete, dupID.String())
	}

	deleted := 0
	if len(toDelete) > 0 {
		// One transaction: a crash mid-merge must not leave the group half gone.
		deleted, err = uc.LeadRepo.DeleteMany(ctx, toDelete)
		if err != nil {
			return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
		}
	}

	return &MergeDuplicatesOutput{
		KeptLeadID:   keepID.String(),
		DeletedCount: deleted,
	}, nil
}
