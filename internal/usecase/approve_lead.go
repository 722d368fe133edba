package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/leadmarket/internal/entity"
	"github.com/xavierca1/leadmarket/internal/infra/queue"
)

// ApprovalPolicy holds the admission threshold a lead's validation score must
// clear before an operator may approve it.
type ApprovalPolicy struct {
	AdmissionThreshold float64
}

func DefaultApprovalPolicy() ApprovalPolicy {
	return ApprovalPolicy{AdmissionThreshold: 0.7}
}

// ApproveLeadUseCase drives one transition of the approval workflow: audit
// row, lead update, listing flip and a fire-and-forget vendor notification.
type ApproveLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	ApprovalRepo entity.ApprovalRecordRepositoryInterface
	Notifier     NotificationPublisherInterface
	Policy       ApprovalPolicy
}

func NewApproveLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	approvalRepo entity.ApprovalRecordRepositoryInterface,
	notifier NotificationPublisherInterface,
	policy ApprovalPolicy,
) *ApproveLeadUseCase {
	return &ApproveLeadUseCase{
		LeadRepo:     leadRepo,
		ApprovalRepo: approvalRepo,
		Notifier:     notifier,
		Policy:       policy,
	}
}

func (uc *ApproveLeadUseCase) Execute(ctx context.Context, input ApproveLeadInput) (*ApprovalOutput, error) {
	if input.ApproverID == "" {
		return nil, NewInputError("approver_id is required")
	}

	lead, err := findLead(ctx, uc.LeadRepo, input.LeadID)
	if err != nil {
		return nil, err
	}

	if !lead.CanTransitionTo(entity.ApprovalApproved) {
		return nil, &DomainError{Code: "TRANSITION", Message: entity.ErrInvalidTransition.Error()}
	}
	// A rejected validation can never be approved, whatever the history.
	if lead.ValidationStatus == entity.ValidationRejected {
		return nil, &DomainError{Code: "TRANSITION", Message: entity.ErrLeadNotAdmissible.Error()}
	}
	if lead.ValidationScore < uc.Policy.AdmissionThreshold {
		return nil, &DomainError{Code: "ADMISSION", Message: entity.ErrLeadNotAdmissible.Error()}
	}

	notes := input.Notes
	if notes == "" {
		notes = "Lead approved by moderator"
	}

	record, err := applyTransition(ctx, uc.LeadRepo, uc.ApprovalRepo, lead, transition{
		approverID: input.ApproverID,
		next:       entity.ApprovalApproved,
		listing:    entity.ListingAvailable,
		notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	notifyVendor(ctx, uc.Notifier, lead, queue.KindLeadApproved, notes)

	return &ApprovalOutput{
		LeadID:           lead.ID,
		Status:           lead.ApprovalStatus,
		ListingStatus:    lead.ListingStatus,
		ApprovalRecordID: record.ID,
	}, nil
}

// RejectLeadUseCase records a rejection and returns the listing to the vendor.
type RejectLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	ApprovalRepo entity.ApprovalRecordRepositoryInterface
	Notifier     NotificationPublisherInterface
}

func NewRejectLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	approvalRepo entity.ApprovalRecordRepositoryInterface,
	notifier NotificationPublisherInterface,
) *RejectLeadUseCase {
	return &RejectLeadUseCase{LeadRepo: leadRepo, ApprovalRepo: approvalRepo, Notifier: notifier}
}

func (uc *RejectLeadUseCase) Execute(ctx context.Context, input RejectLeadInput) (*ApprovalOutput, error) {
	if input.ApproverID == "" {
		return nil, NewInputError("approver_id is required")
	}
	if input.Reason == "" {
		return nil, NewInputError("reason is required")
	}

	lead, err := findLead(ctx, uc.LeadRepo, input.LeadID)
	if err != nil {
		return nil, err
	}

	if !lead.CanTransitionTo(entity.ApprovalRejected) {
		return nil, &DomainError{Code: "TRANSITION", Message: entity.ErrInvalidTransition.Error()}
	}

	record, err := applyTransition(ctx, uc.LeadRepo, uc.ApprovalRepo, lead, transition{
		approverID: input.ApproverID,
		next:       entity.ApprovalRejected,
		listing:    entity.ListingDraft,
		notes:      input.Reason,
	})
	if err != nil {
		return nil, err
	}

	notifyVendor(ctx, uc.Notifier, lead, queue.KindLeadRejected, input.Reason)

	return &ApprovalOutput{
		LeadID:           lead.ID,
		Status:           lead.ApprovalStatus,
		ListingStatus:    lead.ListingStatus,
		ApprovalRecordID: record.ID,
	}, nil
}

// ResubmitLeadUseCase re-enters a rejected lead into review. This is a state
// re-entry, not a new terminal: a fresh ApprovalRecord documents it.
type ResubmitLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	ApprovalRepo entity.ApprovalRecordRepositoryInterface
	Notifier     NotificationPublisherInterface
}

func NewResubmitLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	approvalRepo entity.ApprovalRecordRepositoryInterface,
	notifier NotificationPublisherInterface,
) *ResubmitLeadUseCase {
	return &ResubmitLeadUseCase{LeadRepo: leadRepo, ApprovalRepo: approvalRepo, Notifier: notifier}
}

func (uc *ResubmitLeadUseCase) Execute(ctx context.Context, input ResubmitLeadInput) (*ApprovalOutput, error) {
	if input.ApproverID == "" {
		return nil, NewInputError("approver_id is required")
	}

	lead, err := findLead(ctx, uc.LeadRepo, input.LeadID)
	if err != nil {
		return nil, err
	}

	if !lead.CanTransitionTo(entity.ApprovalUnderReview) {
		return nil, &DomainError{Code: "TRANSITION", Message: entity.ErrInvalidTransition.Error()}
	}

	notes := input.Notes
	if notes == "" {
		notes = "Lead resubmitted for review"
	}

	record, err := applyTransition(ctx, uc.LeadRepo, uc.ApprovalRepo, lead, transition{
		approverID: input.ApproverID,
		next:       entity.ApprovalUnderReview,
		listing:    lead.ListingStatus,
		notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	return &ApprovalOutput{
		LeadID:           lead.ID,
		Status:           lead.ApprovalStatus,
		ListingStatus:    lead.ListingStatus,
		ApprovalRecordID: record.ID,
	}, nil
}

type transition struct {
	approverID string
	next       entity.ApprovalStatus
	listing    entity.ListingStatus
	notes      string
}

func findLead(ctx context.Context, repo entity.LeadRepositoryInterface, id string) (*entity.Lead, error) {
	lead, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		if errors.Is(err, entity.ErrInvalidLeadID) {
			return nil, NewInputError("invalid lead id format")
		}
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}
	return lead, nil
}

func applyTransition(
	ctx context.Context,
	leadRepo entity.LeadRepositoryInterface,
	approvalRepo entity.ApprovalRecordRepositoryInterface,
	lead *entity.Lead,
	tr transition,
) (*entity.ApprovalRecord, error) {
	prevApproval := lead.ApprovalStatus
	prevListing := lead.ListingStatus

	lead.ApprovalStatus = tr.next
	lead.ListingStatus = tr.listing

	record := entity.NewApprovalRecord(lead.ID, tr.approverID, tr.next, tr.notes)

	tx := NewTransaction()
	tx.AddOperation("update lead", func(ctx context.Context) error {
		return leadRepo.Update(ctx, lead)
	})
	tx.AddCompensation("restore lead approval state", func(ctx context.Context) error {
		lead.ApprovalStatus = prevApproval
		lead.ListingStatus = prevListing
		return leadRepo.Update(ctx, lead)
	})
	tx.AddOperation("create approval record", func(ctx context.Context) error {
		return approvalRepo.Create(ctx, record)
	})

	if err := tx.Execute(ctx); err != nil {
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	return record, nil
}

// notifyVendor publishes the transition event. Notification failure must
// never roll back the transition, so errors only get logged.
func notifyVendor(ctx context.Context, notifier NotificationPublisherInterface, lead *entity.Lead, kind, message string) {
	if notifier == nil {
		return
	}
	payload := queue.NotificationPayload{
		VendorID:  lead.VendorID,
		LeadID:    lead.ID,
		LeadTitle: lead.Title,
		Kind:      kind,
		Message:   message,
	}
	if err := notifier.PublishLeadEvent(ctx, payload); err != nil {
		log.Printf("WARNING: transition saved but notification publish failed for lead %s: %v", lead.ID, err)
	}
}
